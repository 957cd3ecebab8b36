package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
)

// PlaceModule wires the Kakao Local proxy.
// Public: GET /places/keyword, /places/category, /places/address, /places/coord2address
type PlaceModule struct {
	Handler *handlers.PlaceHandler
}

func NewPlaceModule(h *handlers.PlaceHandler) *PlaceModule {
	return &PlaceModule{Handler: h}
}

func (m *PlaceModule) Register(rg *gin.RouterGroup) {
	places := rg.Group("/places")
	{
		places.GET("/keyword", m.Handler.Keyword)
		places.GET("/category", m.Handler.Category)
		places.GET("/address", m.Handler.Address)
		places.GET("/coord2address", m.Handler.Coord2Address)
	}
}
