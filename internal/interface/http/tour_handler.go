package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/tourapi"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

type TourHandler struct {
	Tour   *tourapi.Client
	Logger *logrus.Logger
}

func NewTourHandler(client *tourapi.Client, logger *logrus.Logger) *TourHandler {
	return &TourHandler{Tour: client, Logger: logger}
}

// mockSeoulSpots is served from /tour/popular when no TourAPI key is
// configured, so frontend work does not need government API credentials.
var mockSeoulSpots = []tourapi.Spot{
	{ID: "126508", Title: "Gyeongbokgung Palace (경복궁)", Address: "161 Sajik-ro, Jongno-gu, Seoul",
		Category: "A02010100", MapX: 126.9769930325, MapY: 37.5788222356, Tel: "02-3700-3900"},
	{ID: "126535", Title: "N Seoul Tower (N서울타워)", Address: "105 Namsangongwon-gil, Yongsan-gu, Seoul",
		Category: "A02050200", MapX: 126.9882266598, MapY: 37.5511694996},
	{ID: "126486", Title: "Bukchon Hanok Village (북촌한옥마을)", Address: "37 Gyedong-gil, Jongno-gu, Seoul",
		Category: "A02010700", MapX: 126.9849519457, MapY: 37.5826490235},
	{ID: "264337", Title: "Myeongdong Shopping Street (명동)", Address: "Myeongdong-gil, Jung-gu, Seoul",
		Category: "A04010200", MapX: 126.9850380932, MapY: 37.5636267497},
	{ID: "126848", Title: "Dongdaemun Design Plaza (DDP)", Address: "281 Eulji-ro, Jung-gu, Seoul",
		Category: "A02060500", MapX: 127.0095616777, MapY: 37.5668594646, Tel: "02-2153-0000"},
	{ID: "782919", Title: "Gwangjang Market (광장시장)", Address: "88 Changgyeonggung-ro, Jongno-gu, Seoul",
		Category: "A04010100", MapX: 126.9996574857, MapY: 37.5701186783},
}

func (h *TourHandler) requireKey(c *gin.Context) bool {
	if h.Tour.HasKey() {
		return true
	}
	response.Error(c, http.StatusInternalServerError, response.CodeAPIKeyMissing, "tour api key not configured", nil)
	return false
}

func (h *TourHandler) upstream(c *gin.Context, err error) {
	h.Logger.WithError(err).Error("tour api request failed")
	response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, "tour api unreachable", nil)
}

// Search handles GET /tour/search (location-based keyword search).
func (h *TourHandler) Search(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	mapX, errX := strconv.ParseFloat(c.Query("map_x"), 64)
	mapY, errY := strconv.ParseFloat(c.Query("map_y"), 64)
	if errX != nil || errY != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"map_x": "is required", "map_y": "is required"})
		return
	}
	radius := queryInt(c, "radius")
	if radius <= 0 {
		radius = 5000
	}
	rows := queryInt(c, "rows")
	if rows <= 0 {
		rows = 20
	}

	spots, err := h.Tour.Search(c.Request.Context(), tourapi.SearchQuery{
		Keyword:       c.Query("keyword"),
		MapX:          mapX,
		MapY:          mapY,
		Radius:        radius,
		Rows:          rows,
		ContentTypeID: c.Query("content_type_id"),
	})
	if err != nil {
		h.upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, spots, "", gin.H{"count": len(spots)})
}

// Popular handles GET /tour/popular. Without a key it answers the curated
// Seoul list flagged as mock data.
func (h *TourHandler) Popular(c *gin.Context) {
	if !h.Tour.HasKey() {
		response.Success(c, http.StatusOK, mockSeoulSpots, "", gin.H{"mock": true, "count": len(mockSeoulSpots)})
		return
	}

	contentTypeID := c.Query("content_type_id")
	if contentTypeID == "" {
		contentTypeID = "12" // tourist attractions
	}
	rows := queryInt(c, "rows")
	if rows <= 0 {
		rows = 10
	}

	spots, err := h.Tour.Popular(c.Request.Context(), tourapi.PopularQuery{
		AreaCode:      c.Query("area_code"),
		ContentTypeID: contentTypeID,
		Rows:          rows,
	})
	if err != nil {
		h.upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, spots, "", gin.H{"mock": false, "count": len(spots)})
}

// Detail handles GET /tour/detail/:contentID.
func (h *TourHandler) Detail(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	contentID := c.Param("contentID")

	detail, found, err := h.Tour.Detail(c.Request.Context(), contentID)
	if err != nil {
		h.upstream(c, err)
		return
	}
	if !found {
		response.Error(c, http.StatusNotFound, response.CodeItemNotFound, "unknown content id", nil)
		return
	}
	response.Success(c, http.StatusOK, detail, "", nil)
}
