package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripnote/travel-planner-api/internal/container"
	handlers "github.com/tripnote/travel-planner-api/internal/interface/http"
	"github.com/tripnote/travel-planner-api/internal/interface/middleware"
)

// AuthModule wires the social login and token refresh routes.
// Public: POST /auth/:provider, POST /auth/refresh
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Limiters are no-ops when Redis is not configured. The refresh limiter
	// keys on IP and path so it never shares a bucket with login, and private
	// IPs bypass both.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	auth := rg.Group("/auth")
	auth.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	auth.POST("/:provider", loginLimiter, m.Handler.Login)
}
