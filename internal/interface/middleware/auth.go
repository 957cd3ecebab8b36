package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

// userIDKey is the context key the auth middleware stores the subject under.
const userIDKey = "user_id"

// UserID returns the authenticated user id set by BearerAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// BearerAuth validates the Authorization bearer token and resolves its subject
// against the user store. A token whose user has since been deleted is rejected
// with a distinct code so clients can force a re-login instead of a retry.
func BearerAuth(jwtm *helpers.JWTManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, response.CodeInvalidToken, "missing bearer token", nil)
			return
		}

		uid, err := jwtm.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, response.CodeInvalidToken, "invalid or expired token", nil)
			return
		}

		if _, err := users.GetByID(c.Request.Context(), uid); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.AbortError(c, http.StatusUnauthorized, response.CodeUserNotFound, "user no longer exists", nil)
				return
			}
			response.AbortError(c, http.StatusInternalServerError, response.CodeInternalError, "could not resolve user", nil)
			return
		}

		c.Set(userIDKey, uid)
		c.Next()
	}
}
