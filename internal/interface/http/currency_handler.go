package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/application"
	"github.com/tripnote/travel-planner-api/pkg/response"
)

type CurrencyHandler struct {
	Currency *application.CurrencyService
	Logger   *logrus.Logger
}

func NewCurrencyHandler(currency *application.CurrencyService, logger *logrus.Logger) *CurrencyHandler {
	return &CurrencyHandler{Currency: currency, Logger: logger}
}

func normalizeCurrency(code, def string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def, def != ""
	}
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}

// Rates handles GET /currency/rates?base=. Responses within the cache TTL are
// served from cache, byte for byte.
func (h *CurrencyHandler) Rates(c *gin.Context) {
	base, ok := normalizeCurrency(c.Query("base"), "KRW")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request",
			map[string]string{"base": "must be a 3-letter currency code"})
		return
	}

	raw, err := h.Currency.Rates(c.Request.Context(), base)
	if err != nil {
		h.Logger.WithError(err).WithField("base", base).Error("rate fetch failed")
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, "exchange rate provider unreachable", nil)
		return
	}
	response.Success(c, http.StatusOK, json.RawMessage(raw), "", nil)
}

// Convert handles GET /currency/convert?amount=&from=&to=.
func (h *CurrencyHandler) Convert(c *gin.Context) {
	details := map[string]string{}
	from, ok := normalizeCurrency(c.Query("from"), "")
	if !ok {
		details["from"] = "must be a 3-letter currency code"
	}
	to, ok := normalizeCurrency(c.Query("to"), "")
	if !ok {
		details["to"] = "must be a 3-letter currency code"
	}
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		details["amount"] = "must be a positive number"
	}
	if len(details) > 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidationError, "invalid request", details)
		return
	}

	result, err := h.Currency.Convert(c.Request.Context(), from, to, amount)
	if err != nil {
		h.Logger.WithError(err).Error("pair conversion failed")
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamError, "exchange rate provider unreachable", nil)
		return
	}
	response.Success(c, http.StatusOK, result, "", nil)
}

// Supported handles GET /currency/supported.
func (h *CurrencyHandler) Supported(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Currency.Supported(), "", nil)
}
