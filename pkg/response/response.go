package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Clients and the test suite branch on Code,
// never on Message text.
const (
	CodeValidationError     = "validation_error"
	CodeInvalidCode         = "invalid_code"
	CodeUnsupportedProvider = "unsupported_provider"
	CodeInvalidToken        = "invalid_token"
	CodeInvalidIDToken      = "invalid_id_token"
	CodeInvalidRefresh      = "invalid_refresh_token"
	CodeUserNotFound        = "user_not_found"
	CodeItineraryNotFound   = "itinerary_not_found"
	CodeItemNotFound        = "item_not_found"
	CodeAddressNotFound     = "address_not_found"
	CodeRestaurantNotFound  = "restaurant_not_found"
	CodeAPIKeyMissing       = "api_key_missing"
	CodeUpstreamError       = "upstream_error"
	CodeRateLimited         = "rate_limited"
	CodeInternalError       = "internal_error"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Code      string      `json:"code,omitempty"`
	// Data is never omitted: an empty collection must reach the client as []
	// rather than a missing field.
	Data T `json:"data"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload and optional meta.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Error writes an error envelope. code is the machine-readable discriminator,
// details carries field-level validation info when available.
func Error(ctx *gin.Context, status int, code, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, envelope(ctx, status, code, message, details))
}

// AbortError writes an error envelope and stops the handler chain. For middleware.
func AbortError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, envelope(ctx, status, code, message, details))
}

func envelope(ctx *gin.Context, status int, code, message string, details interface{}) APIResponse[any] {
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Code:      code,
		Error:     details,
	}
}
