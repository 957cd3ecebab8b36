package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/application"
	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	"github.com/tripnote/travel-planner-api/internal/interface/middleware"
	"github.com/tripnote/travel-planner-api/pkg/response"
	"github.com/tripnote/travel-planner-api/pkg/validation"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// TripHandler serves the ownership-checked itinerary tree: itineraries and
// their nested items and budgets.
type TripHandler struct {
	Trips  *application.TripService
	Logger *logrus.Logger
}

func NewTripHandler(trips *application.TripService, logger *logrus.Logger) *TripHandler {
	return &TripHandler{Trips: trips, Logger: logger}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func listParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// tripError maps service errors onto the response taxonomy. Missing and
// not-owned itineraries are both 404; the client never learns which.
func (h *TripHandler) tripError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, application.ErrItineraryNotFound):
		response.Error(c, http.StatusNotFound, response.CodeItineraryNotFound, "itinerary not found", nil)
	case errors.Is(err, application.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, response.CodeItemNotFound, "item not found", nil)
	case errors.Is(err, entity.ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"end_date": "must be on or after start_date"})
	default:
		h.Logger.WithError(err).Error(op)
		response.Error(c, http.StatusInternalServerError, response.CodeInternalError, op, nil)
	}
}

func itineraryID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeItineraryNotFound, "itinerary not found", nil)
	}
	return id, ok
}

func itemID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "itemID")
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeItemNotFound, "item not found", nil)
	}
	return id, ok
}

// Itineraries

type itineraryRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	StartDate   string `json:"start_date" binding:"required,dateonly"`
	EndDate     string `json:"end_date" binding:"required,dateonly"`
}

func (r itineraryRequest) toInput() application.ItineraryInput {
	start, _ := time.Parse(dateOnly, r.StartDate)
	end, _ := time.Parse(dateOnly, r.EndDate)
	return application.ItineraryInput{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
	}
}

// List handles GET /itineraries, newest trips first.
func (h *TripHandler) List(c *gin.Context) {
	limit, offset := listParams(c)
	list, err := h.Trips.ListItineraries(c.Request.Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		h.tripError(c, err, "could not list itineraries")
		return
	}
	response.Success(c, http.StatusOK, toItineraryDTOs(list), "", gin.H{"limit": limit, "offset": offset, "count": len(list)})
}

// Create handles POST /itineraries.
func (h *TripHandler) Create(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	it, err := h.Trips.CreateItinerary(c.Request.Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		h.tripError(c, err, "could not create itinerary")
		return
	}
	response.Success(c, http.StatusCreated, toItineraryDTO(it), "itinerary created", nil)
}

// Get handles GET /itineraries/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	it, err := h.Trips.ResolveOwned(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.tripError(c, err, "could not load itinerary")
		return
	}
	response.Success(c, http.StatusOK, toItineraryDTO(it), "", nil)
}

// Update handles PUT /itineraries/:id, replacing all fields.
func (h *TripHandler) Update(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	it, err := h.Trips.UpdateItinerary(c.Request.Context(), id, middleware.UserID(c), req.toInput())
	if err != nil {
		h.tripError(c, err, "could not update itinerary")
		return
	}
	response.Success(c, http.StatusOK, toItineraryDTO(it), "itinerary updated", nil)
}

// Delete handles DELETE /itineraries/:id. Items and budgets cascade away.
func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	if err := h.Trips.DeleteItinerary(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.tripError(c, err, "could not delete itinerary")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "itinerary deleted", nil)
}

// Items

// Coordinates are pointers so that 0 stays a valid value; required on a plain
// float64 would reject the equator and the prime meridian.
type itemRequest struct {
	PlaceName    string   `json:"place_name" binding:"required,min=1,max=200"`
	Latitude     *float64 `json:"latitude" binding:"required,latitude"`
	Longitude    *float64 `json:"longitude" binding:"required,longitude"`
	VisitDate    *string  `json:"visit_date" binding:"omitempty,dateonly"`
	VisitOrder   *int     `json:"visit_order" binding:"omitempty,gte=0"`
	Memo         string   `json:"memo" binding:"omitempty,max=2000"`
	PlaceType    string   `json:"place_type" binding:"omitempty,max=50"`
	KakaoPlaceID string   `json:"kakao_place_id" binding:"omitempty,max=64"`
}

func (r itemRequest) toInput() application.ItemInput {
	in := application.ItemInput{
		PlaceName:    r.PlaceName,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		VisitOrder:   r.VisitOrder,
		Memo:         r.Memo,
		PlaceType:    r.PlaceType,
		KakaoPlaceID: r.KakaoPlaceID,
	}
	if r.VisitDate != nil {
		d, _ := time.Parse(dateOnly, *r.VisitDate)
		in.VisitDate = &d
	}
	return in
}

// ListItems handles GET /itineraries/:id/items.
func (h *TripHandler) ListItems(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	items, err := h.Trips.ListItems(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.tripError(c, err, "could not list items")
		return
	}
	response.Success(c, http.StatusOK, toItemDTOs(items), "", nil)
}

// AddItem handles POST /itineraries/:id/items. The parent is resolved before
// anything is written, so an unowned itinerary yields 404 and no row.
func (h *TripHandler) AddItem(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	item, err := h.Trips.AddItem(c.Request.Context(), id, middleware.UserID(c), req.toInput())
	if err != nil {
		h.tripError(c, err, "could not add item")
		return
	}
	response.Success(c, http.StatusCreated, toItemDTO(item), "item added", nil)
}

// UpdateItem handles PUT /itineraries/:id/items/:itemID.
func (h *TripHandler) UpdateItem(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	iid, ok := itemID(c)
	if !ok {
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	item, err := h.Trips.UpdateItem(c.Request.Context(), id, iid, middleware.UserID(c), req.toInput())
	if err != nil {
		h.tripError(c, err, "could not update item")
		return
	}
	response.Success(c, http.StatusOK, toItemDTO(item), "item updated", nil)
}

// DeleteItem handles DELETE /itineraries/:id/items/:itemID.
func (h *TripHandler) DeleteItem(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	iid, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.Trips.DeleteItem(c.Request.Context(), id, iid, middleware.UserID(c)); err != nil {
		h.tripError(c, err, "could not delete item")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "item deleted", nil)
}

// Budgets

type budgetRequest struct {
	Category    string    `json:"category" binding:"required,min=1,max=50"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"omitempty,currency"`
	SpentAt     time.Time `json:"spent_at" binding:"required"`
	Description string    `json:"description" binding:"omitempty,max=500"`
}

// ListBudgets handles GET /itineraries/:id/budgets.
func (h *TripHandler) ListBudgets(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	budgets, err := h.Trips.ListBudgets(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.tripError(c, err, "could not list budgets")
		return
	}
	response.Success(c, http.StatusOK, toBudgetDTOs(budgets), "", nil)
}

// AddBudget handles POST /itineraries/:id/budgets.
func (h *TripHandler) AddBudget(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	b, err := h.Trips.AddBudget(c.Request.Context(), id, middleware.UserID(c), application.BudgetInput{
		Category:    req.Category,
		Amount:      req.Amount,
		Currency:    req.Currency,
		SpentAt:     req.SpentAt,
		Description: req.Description,
	})
	if err != nil {
		h.tripError(c, err, "could not add budget")
		return
	}
	response.Success(c, http.StatusCreated, toBudgetDTO(b), "budget added", nil)
}
