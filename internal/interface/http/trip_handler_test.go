package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnote/travel-planner-api/pkg/response"
)

func TestCreateItinerary(t *testing.T) {
	env := newTripEnv(t)

	dto := env.createItinerary(t, env.tokenAlice)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "Seoul Trip", dto.Title)
	assert.Equal(t, "2026-03-01", dto.StartDate)
	assert.Equal(t, "2026-03-05", dto.EndDate)
}

func TestCreateItineraryInvalidDateRange(t *testing.T) {
	env := newTripEnv(t)

	rec := doJSON(t, env.router, http.MethodPost, "/api/v1/itineraries", env.tokenAlice, gin.H{
		"title":      "Backwards",
		"start_date": "2026-03-10",
		"end_date":   "2026-03-05",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidationError, e.Code)
	assert.Contains(t, string(e.Error), "end_date")
	assert.Empty(t, env.itineraries.itineraries)
}

func TestCreateItineraryMissingTitle(t *testing.T) {
	env := newTripEnv(t)

	rec := doJSON(t, env.router, http.MethodPost, "/api/v1/itineraries", env.tokenAlice, gin.H{
		"start_date": "2026-03-01",
		"end_date":   "2026-03-05",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidationError, e.Code)
	assert.Contains(t, string(e.Error), "title")
}

func TestGetItineraryCrossUser(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)

	// owner sees it
	rec := doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/api/v1/itineraries/%d", dto.ID), env.tokenAlice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// another user gets 404, not 403
	rec = doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/api/v1/itineraries/%d", dto.ID), env.tokenBob, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeItineraryNotFound, e.Code)
}

func TestAddItemToUnownedItinerary(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)

	rec := doJSON(t, env.router, http.MethodPost, fmt.Sprintf("/api/v1/itineraries/%d/items", dto.ID), env.tokenBob, gin.H{
		"place_name": "Gyeongbokgung Palace",
		"latitude":   37.5788,
		"longitude":  126.9770,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeItineraryNotFound, e.Code)
	assert.Empty(t, env.items.items, "failed ownership check must not create a row")
}

func TestItemLifecycle(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)
	base := fmt.Sprintf("/api/v1/itineraries/%d/items", dto.ID)

	rec := doJSON(t, env.router, http.MethodPost, base, env.tokenAlice, gin.H{
		"place_name":  "Gyeongbokgung Palace",
		"latitude":    37.5788,
		"longitude":   126.9770,
		"visit_date":  "2026-03-02",
		"visit_order": 1,
		"place_type":  "attraction",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created itemDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	require.NotNil(t, created.VisitDate)
	assert.Equal(t, "2026-03-02", *created.VisitDate)

	rec = doJSON(t, env.router, http.MethodPut, fmt.Sprintf("%s/%d", base, created.ID), env.tokenAlice, gin.H{
		"place_name": "Changdeokgung Palace",
		"latitude":   37.5794,
		"longitude":  126.9910,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated itemDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &updated))
	assert.Equal(t, "Changdeokgung Palace", updated.PlaceName)
	assert.Nil(t, updated.VisitDate, "update replaces all fields")

	rec = doJSON(t, env.router, http.MethodDelete, fmt.Sprintf("%s/%d", base, created.ID), env.tokenAlice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, env.router, http.MethodGet, base, env.tokenAlice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []itemDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	assert.Empty(t, items)
}

func TestItemAtZeroCoordinates(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)
	base := fmt.Sprintf("/api/v1/itineraries/%d/items", dto.ID)

	// 0/0 is a real coordinate, not an absent field
	rec := doJSON(t, env.router, http.MethodPost, base, env.tokenAlice, gin.H{
		"place_name": "Null Island",
		"latitude":   0,
		"longitude":  0,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created itemDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	assert.Zero(t, created.Latitude)
	assert.Zero(t, created.Longitude)

	// omitted coordinates are still rejected
	rec = doJSON(t, env.router, http.MethodPost, base, env.tokenAlice, gin.H{
		"place_name": "Nowhere",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidationError, e.Code)
	assert.Contains(t, string(e.Error), "latitude")
}

func TestItemValidation(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)

	rec := doJSON(t, env.router, http.MethodPost, fmt.Sprintf("/api/v1/itineraries/%d/items", dto.ID), env.tokenAlice, gin.H{
		"place_name": "Nowhere",
		"latitude":   95.0,
		"longitude":  126.9770,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeValidationError, e.Code)
	assert.Contains(t, string(e.Error), "latitude")
}

func TestUpdateItemWrongParent(t *testing.T) {
	env := newTripEnv(t)
	first := env.createItinerary(t, env.tokenAlice)
	second := env.createItinerary(t, env.tokenAlice)

	rec := doJSON(t, env.router, http.MethodPost, fmt.Sprintf("/api/v1/itineraries/%d/items", first.ID), env.tokenAlice, gin.H{
		"place_name": "Spot",
		"latitude":   37.5,
		"longitude":  127.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item itemDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &item))

	rec = doJSON(t, env.router, http.MethodPut,
		fmt.Sprintf("/api/v1/itineraries/%d/items/%d", second.ID, item.ID), env.tokenAlice, gin.H{
			"place_name": "Moved",
			"latitude":   37.5,
			"longitude":  127.0,
		})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeItemNotFound, decodeEnvelope(t, rec).Code)
}

func TestListItinerariesPagination(t *testing.T) {
	env := newTripEnv(t)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, env.router, http.MethodPost, "/api/v1/itineraries", env.tokenAlice, gin.H{
			"title":      fmt.Sprintf("Trip %d", i),
			"start_date": fmt.Sprintf("2026-0%d-01", i+1),
			"end_date":   fmt.Sprintf("2026-0%d-05", i+1),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries?limit=2", env.tokenAlice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []itineraryDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "2026-03-01", list[0].StartDate, "newest start date first")

	rec = doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries?limit=2&offset=2", env.tokenAlice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	assert.Len(t, list, 1)

	// bob sees none of alice's trips
	rec = doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries", env.tokenBob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	assert.Empty(t, list)
}

func TestEmptyListKeepsDataField(t *testing.T) {
	env := newTripEnv(t)

	rec := doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries", env.tokenAlice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`, "empty collections serialize as [], never vanish")
}

func TestBudgets(t *testing.T) {
	env := newTripEnv(t)
	dto := env.createItinerary(t, env.tokenAlice)
	base := fmt.Sprintf("/api/v1/itineraries/%d/budgets", dto.ID)

	rec := doJSON(t, env.router, http.MethodPost, base, env.tokenAlice, gin.H{
		"category": "food",
		"amount":   45000,
		"spent_at": "2026-03-02T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var b budgetDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &b))
	assert.Equal(t, "USD", b.Currency, "currency defaults to USD")

	// cross-user access is hidden
	rec = doJSON(t, env.router, http.MethodGet, base, env.tokenBob, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeItineraryNotFound, decodeEnvelope(t, rec).Code)
}

func TestAuthRequired(t *testing.T) {
	env := newTripEnv(t)

	rec := doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, response.CodeInvalidToken, decodeEnvelope(t, rec).Code)

	rec = doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, response.CodeInvalidToken, decodeEnvelope(t, rec).Code)
}

func TestAuthDeletedUser(t *testing.T) {
	env := newTripEnv(t)
	require.NoError(t, env.users.Delete(context.Background(), env.aliceID))

	rec := doJSON(t, env.router, http.MethodGet, "/api/v1/itineraries", env.tokenAlice, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, response.CodeUserNotFound, decodeEnvelope(t, rec).Code)
}
