package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
)

// TourModule wires the Korea TourAPI proxy.
// Public: GET /tour/search, /tour/popular, /tour/detail/:contentID
type TourModule struct {
	Handler *handlers.TourHandler
}

func NewTourModule(h *handlers.TourHandler) *TourModule {
	return &TourModule{Handler: h}
}

func (m *TourModule) Register(rg *gin.RouterGroup) {
	tour := rg.Group("/tour")
	{
		tour.GET("/search", m.Handler.Search)
		tour.GET("/popular", m.Handler.Popular)
		tour.GET("/detail/:contentID", m.Handler.Detail)
	}
}
