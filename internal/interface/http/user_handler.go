package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/application"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
	"github.com/tripnote/travel-planner-api/internal/interface/middleware"
	"github.com/tripnote/travel-planner-api/pkg/response"
	"github.com/tripnote/travel-planner-api/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("fetch profile failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternalError, "could not load profile", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "", nil)
}

type updateProfileRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	DisplayName  *string `json:"display_name" binding:"omitempty,min=1,max=100"`
	LanguageCode *string `json:"language_code" binding:"omitempty,len=2,alpha"`
	CurrencyCode *string `json:"currency_code" binding:"omitempty,currency"`
	AvatarURL    *string `json:"avatar_url" binding:"omitempty,url"`
}

// Update handles PUT /users/me. Absent fields keep their current value.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", validation.ToDetails(err))
		return
	}

	u, err := h.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), application.UpdateProfileInput{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		LanguageCode: req.LanguageCode,
		CurrencyCode: req.CurrencyCode,
		AvatarURL:    req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update profile failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternalError, "could not update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "profile updated", nil)
}

// Delete handles DELETE /users/me. Itineraries and their children are removed
// by the database cascade.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete account failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternalError, "could not delete account", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "account deleted", nil)
}
