package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/delivery"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

func newDeliveryRouter() *gin.Engine {
	h := NewDeliveryHandler()
	r := gin.New()
	d := r.Group("/api/v1/delivery")
	d.GET("/restaurants", h.Restaurants)
	d.GET("/restaurants/:id", h.Restaurant)
	d.GET("/categories", h.Categories)
	d.GET("/partners", h.Partners)
	d.GET("/payment-methods", h.PaymentMethods)
	return r
}

func TestRestaurantsFilter(t *testing.T) {
	r := newDeliveryRouter()

	rec := doJSON(t, r, http.MethodGet, "/api/v1/delivery/restaurants?category=pizza", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []delivery.Restaurant
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &list))
	require.NotEmpty(t, list)
	for _, item := range list {
		assert.Equal(t, "pizza", item.Category)
	}
}

func TestRestaurantByID(t *testing.T) {
	r := newDeliveryRouter()

	rec := doJSON(t, r, http.MethodGet, "/api/v1/delivery/restaurants/kyochon-hongdae", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/delivery/restaurants/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, response.CodeRestaurantNotFound, decodeEnvelope(t, rec).Code)
}

func TestDeliveryStaticEndpoints(t *testing.T) {
	r := newDeliveryRouter()

	for _, path := range []string{
		"/api/v1/delivery/categories",
		"/api/v1/delivery/partners",
		"/api/v1/delivery/payment-methods",
	} {
		rec := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
