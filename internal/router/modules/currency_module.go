package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
)

// CurrencyModule wires the exchange-rate proxy.
// Public: GET /currency/rates, /currency/convert, /currency/supported
type CurrencyModule struct {
	Handler *handlers.CurrencyHandler
}

func NewCurrencyModule(h *handlers.CurrencyHandler) *CurrencyModule {
	return &CurrencyModule{Handler: h}
}

func (m *CurrencyModule) Register(rg *gin.RouterGroup) {
	currency := rg.Group("/currency")
	{
		currency.GET("/rates", m.Handler.Rates)
		currency.GET("/convert", m.Handler.Convert)
		currency.GET("/supported", m.Handler.Supported)
	}
}
