package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/application"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/googleauth"
	"github.com/tripnote/travel-planner-api/pkg/response"
	"github.com/tripnote/travel-planner-api/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type loginRequest struct {
	Code string `json:"code" binding:"required"`
}

type loginResponse struct {
	User   userDTO  `json:"user"`
	Tokens tokenDTO `json:"tokens"`
}

// Login handles POST /auth/:provider. The authorization code comes from the
// client-side OAuth redirect; the server finishes the exchange.
func (h *AuthHandler) Login(c *gin.Context) {
	provider := c.Param("provider")

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	user, pair, err := h.Auth.Login(c.Request.Context(), provider, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUnsupportedProvider):
			response.Error(c, http.StatusBadRequest, response.CodeUnsupportedProvider, "unsupported provider: "+provider, nil)
		case errors.Is(err, googleauth.ErrInvalidCode):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidCode, "authorization code rejected", nil)
		case errors.Is(err, googleauth.ErrInvalidIDToken):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidIDToken, "id token verification failed", nil)
		case errors.Is(err, googleauth.ErrUpstream):
			h.Logger.WithError(err).Error("google token exchange failed")
			response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, "login provider unreachable", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternalError, "login failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, loginResponse{User: toUserDTO(user), Tokens: toTokenDTO(pair)}, "login successful", nil)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	pair, err := h.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidRefresh):
			response.Error(c, http.StatusUnauthorized, response.CodeInvalidRefresh, "invalid refresh token", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, response.CodeUserNotFound, "user no longer exists", nil)
		default:
			h.Logger.WithError(err).Error("token refresh failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternalError, "refresh failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, toTokenDTO(pair), "token refreshed", nil)
}
