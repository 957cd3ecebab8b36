package application

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/infrastructure/exchange"
	"github.com/tripnote/travel-planner-api/pkg/cache"
)

// displayCurrencies is the fixed set surfaced to clients on the rates endpoint.
var displayCurrencies = []string{"USD", "EUR", "JPY", "CNY", "GBP", "KRW"}

// RateTable is the stable response shape for currency rates. Mock marks data
// served without an upstream call because no API key is configured.
type RateTable struct {
	Base      string             `json:"base"`
	UpdatedAt string             `json:"updated_at"`
	Rates     map[string]float64 `json:"rates"`
	Mock      bool               `json:"mock"`
}

// ConversionResult is the stable response shape for pair conversion.
type ConversionResult struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
	Mock            bool    `json:"mock"`
}

// CurrencyInfo describes one supported currency.
type CurrencyInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CurrencyService proxies ExchangeRate-API with a TTL cache in front of the
// rates lookup. The cache stores the marshaled response bytes, so every hit
// within the TTL window serves byte-identical data without an upstream call.
type CurrencyService struct {
	Client *exchange.Client
	Cache  cache.Cache
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewCurrencyService(client *exchange.Client, c cache.Cache, ttl time.Duration, logger *logrus.Logger) *CurrencyService {
	return &CurrencyService{Client: client, Cache: c, TTL: ttl, Logger: logger}
}

func rateCacheKey(base string) string { return "rates:" + base }

// Rates returns the marshaled rate table for base, cached for the TTL.
func (s *CurrencyService) Rates(ctx context.Context, base string) (json.RawMessage, error) {
	if !s.Client.HasKey() {
		return json.Marshal(mockRates(base))
	}

	key := rateCacheKey(base)
	if b, ok := s.Cache.Get(ctx, key); ok {
		return b, nil
	}

	latest, err := s.Client.Latest(ctx, base)
	if err != nil {
		return nil, err
	}

	table := RateTable{Base: base, UpdatedAt: latest.UpdatedAt, Rates: map[string]float64{}}
	for _, code := range displayCurrencies {
		table.Rates[code] = latest.Table[code]
	}
	b, err := json.Marshal(table)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, b, s.TTL)
	s.Logger.WithField("base", base).Debug("currency rates refreshed from upstream")
	return b, nil
}

// Convert converts amount between two currencies, rounded to 2 decimals.
func (s *CurrencyService) Convert(ctx context.Context, from, to string, amount float64) (*ConversionResult, error) {
	if !s.Client.HasKey() {
		rate := mockPairRate(from, to)
		return &ConversionResult{
			From: from, To: to, Amount: amount,
			ConvertedAmount: round2(amount * rate), Rate: rate, Mock: true,
		}, nil
	}

	conv, err := s.Client.Pair(ctx, from, to, amount)
	if err != nil {
		return nil, err
	}
	return &ConversionResult{
		From: from, To: to, Amount: amount,
		ConvertedAmount: round2(conv.Result), Rate: conv.Rate,
	}, nil
}

// Supported lists the currencies the client UI offers.
func (s *CurrencyService) Supported() []CurrencyInfo {
	return []CurrencyInfo{
		{Code: "KRW", Name: "Korean Won", Symbol: "₩"},
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
		{Code: "GBP", Name: "British Pound", Symbol: "£"},
	}
}

func mockRates(base string) RateTable {
	table := RateTable{Base: base, UpdatedAt: time.Now().UTC().Format(time.RFC3339), Mock: true}
	if base == "KRW" {
		table.Rates = map[string]float64{
			"USD": 0.00075, "EUR": 0.00069, "JPY": 0.11, "CNY": 0.0054, "GBP": 0.00059,
		}
	} else {
		table.Rates = map[string]float64{
			"USD": 1.0, "EUR": 0.92, "JPY": 148.0, "CNY": 7.1, "GBP": 0.78, "KRW": 1330.0,
		}
	}
	return table
}

var mockPairRates = map[string]float64{
	"KRW_USD": 0.00075,
	"USD_KRW": 1330.0,
	"KRW_EUR": 0.00069,
	"EUR_KRW": 1450.0,
	"KRW_JPY": 0.11,
	"JPY_KRW": 9.1,
}

func mockPairRate(from, to string) float64 {
	if r, ok := mockPairRates[from+"_"+to]; ok {
		return r
	}
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
