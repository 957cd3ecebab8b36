package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
	"github.com/tripnote/travel-planner-api/internal/interface/middleware"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
)

// UserModule wires the profile routes for the authenticated user.
// Protected: GET/PUT/DELETE /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, users repo.UserRepository) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.BearerAuth(m.JWT, m.Users))
	{
		users.GET("/me", m.Handler.Me)
		users.PUT("/me", m.Handler.Update)
		users.DELETE("/me", m.Handler.Delete)
	}
}
