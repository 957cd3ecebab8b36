package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/googleauth"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	jwtm := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	google := googleauth.New("client-id", "client-secret", "http://localhost/callback")
	return NewAuthService(users, google, jwtm, testLogger()), users
}

func TestLoginRejectsUnknownProvider(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "naver", "some-code")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u := entity.NewUser("google", "sub-1", "a@example.com", "A", "")
	require.NoError(t, users.Create(ctx, u))

	first, _, err := svc.JWT.GenerateRefreshToken(u.ID)
	require.NoError(t, err)

	pair, err := svc.Refresh(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	uid, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u := entity.NewUser("google", "sub-1", "a@example.com", "A", "")
	require.NoError(t, users.Create(ctx, u))

	access, _, err := svc.JWT.GenerateAccessToken(u.ID)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidRefresh, "access tokens must not refresh sessions")
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	u := entity.NewUser("google", "sub-1", "a@example.com", "A", "")
	require.NoError(t, users.Create(ctx, u))

	token, _, err := svc.JWT.GenerateRefreshToken(u.ID)
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, u.ID))

	_, err = svc.Refresh(ctx, token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
