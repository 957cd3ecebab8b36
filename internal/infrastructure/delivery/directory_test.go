package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiltersByCategory(t *testing.T) {
	chicken, total := List("chicken", 1, 20)
	require.NotEmpty(t, chicken)
	assert.Equal(t, total, len(chicken))
	for _, r := range chicken {
		assert.Equal(t, "chicken", r.Category)
	}

	all, allTotal := List("", 1, 50)
	assert.Greater(t, allTotal, total)
	assert.Len(t, all, allTotal)
}

func TestListPaginates(t *testing.T) {
	_, total := List("", 1, 50)
	require.Greater(t, total, 2)

	first, _ := List("", 1, 2)
	second, _ := List("", 2, 2)
	assert.Len(t, first, 2)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	beyond, beyondTotal := List("", 99, 2)
	assert.Empty(t, beyond)
	assert.Equal(t, total, beyondTotal, "total is pre-pagination")
}

func TestGet(t *testing.T) {
	r, ok := Get("kyochon-hongdae")
	require.True(t, ok)
	assert.Equal(t, "Kyochon Chicken (교촌치킨)", r.Name)

	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestStaticDirectories(t *testing.T) {
	assert.NotEmpty(t, Categories())
	assert.NotEmpty(t, Partners())
	assert.NotEmpty(t, PaymentMethods())
}
