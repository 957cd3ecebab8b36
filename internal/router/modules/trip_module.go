package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripnote/travel-planner-api/internal/container"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
	"github.com/tripnote/travel-planner-api/internal/interface/middleware"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
)

// TripModule wires the itinerary tree. Everything here requires a session.
// Protected:
//
//	GET/POST        /itineraries
//	GET/PUT/DELETE  /itineraries/:id
//	GET/POST        /itineraries/:id/items
//	PUT/DELETE      /itineraries/:id/items/:itemID
//	GET/POST        /itineraries/:id/budgets
type TripModule struct {
	Handler *handlers.TripHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func NewTripModule(h *handlers.TripHandler, jwt *helpers.JWTManager, users repo.UserRepository) *TripModule {
	return &TripModule{Handler: h, JWT: jwt, Users: users}
}

func (m *TripModule) Register(rg *gin.RouterGroup) {
	// Mutations share one per-user budget; a no-op when Redis is off.
	writeLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil)

	trips := rg.Group("/itineraries")
	trips.Use(middleware.BearerAuth(m.JWT, m.Users))
	{
		trips.GET("", m.Handler.List)
		trips.POST("", writeLimiter, m.Handler.Create)
		trips.GET("/:id", m.Handler.Get)
		trips.PUT("/:id", writeLimiter, m.Handler.Update)
		trips.DELETE("/:id", writeLimiter, m.Handler.Delete)

		trips.GET("/:id/items", m.Handler.ListItems)
		trips.POST("/:id/items", writeLimiter, m.Handler.AddItem)
		trips.PUT("/:id/items/:itemID", writeLimiter, m.Handler.UpdateItem)
		trips.DELETE("/:id/items/:itemID", writeLimiter, m.Handler.DeleteItem)

		trips.GET("/:id/budgets", m.Handler.ListBudgets)
		trips.POST("/:id/budgets", writeLimiter, m.Handler.AddBudget)
	}
}
