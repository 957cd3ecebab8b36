package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/tourapi"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

func newTourRouter(client *tourapi.Client) *gin.Engine {
	h := NewTourHandler(client, quietLogger())
	r := gin.New()
	tour := r.Group("/api/v1/tour")
	tour.GET("/search", h.Search)
	tour.GET("/popular", h.Popular)
	tour.GET("/detail/:contentID", h.Detail)
	return r
}

func TestPopularMockFallbackWithoutKey(t *testing.T) {
	r := newTourRouter(tourapi.New(""))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/tour/popular", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []tourapi.Spot `json:"data"`
		Meta struct {
			Mock bool `json:"mock"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Meta.Mock)
	assert.Len(t, body.Data, 6)
	assert.Equal(t, "Gyeongbokgung Palace (경복궁)", body.Data[0].Title)
}

func TestSearchRequiresKey(t *testing.T) {
	r := newTourRouter(tourapi.New(""))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/tour/search?map_x=126.97&map_y=37.57", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, response.CodeAPIKeyMissing, decodeEnvelope(t, rec).Code)
}

func TestSearchRequiresCoordinates(t *testing.T) {
	r := newTourRouter(tourapi.New("key"))

	rec := doJSON(t, r, http.MethodGet, "/api/v1/tour/search?keyword=palace", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeValidationError, decodeEnvelope(t, rec).Code)
}
