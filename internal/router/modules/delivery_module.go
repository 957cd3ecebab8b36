package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
)

// DeliveryModule wires the static delivery directory.
// Public: GET /delivery/restaurants, /delivery/restaurants/:id,
// /delivery/categories, /delivery/partners, /delivery/payment-methods
type DeliveryModule struct {
	Handler *handlers.DeliveryHandler
}

func NewDeliveryModule(h *handlers.DeliveryHandler) *DeliveryModule {
	return &DeliveryModule{Handler: h}
}

func (m *DeliveryModule) Register(rg *gin.RouterGroup) {
	d := rg.Group("/delivery")
	{
		d.GET("/restaurants", m.Handler.Restaurants)
		d.GET("/restaurants/:id", m.Handler.Restaurant)
		d.GET("/categories", m.Handler.Categories)
		d.GET("/partners", m.Handler.Partners)
		d.GET("/payment-methods", m.Handler.PaymentMethods)
	}
}
