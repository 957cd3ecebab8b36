package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/delivery"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

// DeliveryHandler serves the curated delivery directory. Everything is static
// in-repo data, so there is no error path besides unknown ids.
type DeliveryHandler struct{}

func NewDeliveryHandler() *DeliveryHandler { return &DeliveryHandler{} }

// Restaurants handles GET /delivery/restaurants.
func (h *DeliveryHandler) Restaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	list, total := delivery.List(c.Query("category"), page, limit)
	response.Success(c, http.StatusOK, list, "", gin.H{"total": total, "page": page, "limit": limit})
}

// Restaurant handles GET /delivery/restaurants/:id.
func (h *DeliveryHandler) Restaurant(c *gin.Context) {
	r, ok := delivery.Get(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, response.CodeRestaurantNotFound, "restaurant not found", nil)
		return
	}
	response.Success(c, http.StatusOK, r, "", nil)
}

// Categories handles GET /delivery/categories.
func (h *DeliveryHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, delivery.Categories(), "", nil)
}

// Partners handles GET /delivery/partners.
func (h *DeliveryHandler) Partners(c *gin.Context) {
	response.Success(c, http.StatusOK, delivery.Partners(), "", nil)
}

// PaymentMethods handles GET /delivery/payment-methods.
func (h *DeliveryHandler) PaymentMethods(c *gin.Context) {
	response.Success(c, http.StatusOK, delivery.PaymentMethods(), "", nil)
}
