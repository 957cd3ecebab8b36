package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/kakao"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

// PlaceHandler proxies Kakao Local search. Unlike the tour endpoints there is
// no mock fallback; every route requires a configured REST key.
type PlaceHandler struct {
	Kakao  *kakao.Client
	Logger *logrus.Logger
}

func NewPlaceHandler(client *kakao.Client, logger *logrus.Logger) *PlaceHandler {
	return &PlaceHandler{Kakao: client, Logger: logger}
}

func (h *PlaceHandler) requireKey(c *gin.Context) bool {
	if h.Kakao.HasKey() {
		return true
	}
	response.Error(c, http.StatusInternalServerError, response.CodeAPIKeyMissing, "kakao api key not configured", nil)
	return false
}

func (h *PlaceHandler) upstream(c *gin.Context, err error) {
	h.Logger.WithError(err).Error("kakao request failed")
	response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, "kakao unreachable", nil)
}

func queryFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// Keyword handles GET /places/keyword.
func (h *PlaceHandler) Keyword(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	query := c.Query("query")
	if query == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"query": "is required"})
		return
	}
	x, okX := queryFloat(c, "x")
	y, okY := queryFloat(c, "y")
	if !okX || !okY {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"x": "must be a number", "y": "must be a number"})
		return
	}

	page, err := h.Kakao.SearchKeyword(c.Request.Context(), kakao.KeywordQuery{
		Query:  query,
		X:      x,
		Y:      y,
		Radius: queryInt(c, "radius"),
		Page:   queryInt(c, "page"),
		Size:   queryInt(c, "size"),
	})
	if err != nil {
		h.upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, page, "", nil)
}

// Category handles GET /places/category.
func (h *PlaceHandler) Category(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	code := c.Query("category_code")
	x, okX := queryFloat(c, "x")
	y, okY := queryFloat(c, "y")
	if code == "" || !okX || !okY || x == nil || y == nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"category_code": "is required", "x": "is required", "y": "is required"})
		return
	}

	page, err := h.Kakao.SearchCategory(c.Request.Context(), kakao.CategoryQuery{
		CategoryCode: code,
		X:            *x,
		Y:            *y,
		Radius:       queryInt(c, "radius"),
		Page:         queryInt(c, "page"),
		Size:         queryInt(c, "size"),
	})
	if err != nil {
		h.upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, page, "", nil)
}

// Address handles GET /places/address.
func (h *PlaceHandler) Address(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	query := c.Query("query")
	if query == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"query": "is required"})
		return
	}

	page, err := h.Kakao.SearchAddress(c.Request.Context(), query, queryInt(c, "page"), queryInt(c, "size"))
	if err != nil {
		h.upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, page, "", nil)
}

// Coord2Address handles GET /places/coord2address.
func (h *PlaceHandler) Coord2Address(c *gin.Context) {
	if !h.requireKey(c) {
		return
	}
	x, okX := queryFloat(c, "x")
	y, okY := queryFloat(c, "y")
	if !okX || !okY || x == nil || y == nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"x": "is required", "y": "is required"})
		return
	}

	addr, found, err := h.Kakao.Coord2Address(c.Request.Context(), *x, *y)
	if err != nil {
		h.upstream(c, err)
		return
	}
	if !found {
		response.Error(c, http.StatusNotFound, response.CodeAddressNotFound, "no address at coordinate", nil)
		return
	}
	response.Success(c, http.StatusOK, addr, "", nil)
}
