// Package exchange wraps ExchangeRate-API v6.
// Docs: https://www.exchangerate-api.com/docs/overview
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrUpstream marks a non-200 answer or transport failure from the rate API.
var ErrUpstream = errors.New("exchange rate upstream error")

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool { return c.apiKey != "" }

// Rates carries the latest conversion table for a base currency.
type Rates struct {
	Base      string
	UpdatedAt string
	Table     map[string]float64
}

// Conversion is one pair conversion result.
type Conversion struct {
	Rate   float64
	Result float64
}

// Latest fetches the full conversion table for base.
func (c *Client) Latest(ctx context.Context, base string) (*Rates, error) {
	var payload struct {
		BaseCode          string             `json:"base_code"`
		TimeLastUpdateUTC string             `json:"time_last_update_utc"`
		ConversionRates   map[string]float64 `json:"conversion_rates"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base), &payload); err != nil {
		return nil, err
	}
	return &Rates{
		Base:      payload.BaseCode,
		UpdatedAt: payload.TimeLastUpdateUTC,
		Table:     payload.ConversionRates,
	}, nil
}

// Pair converts amount from one currency to another.
func (c *Client) Pair(ctx context.Context, from, to string, amount float64) (*Conversion, error) {
	var payload struct {
		ConversionRate   float64 `json:"conversion_rate"`
		ConversionResult float64 `json:"conversion_result"`
	}
	url := fmt.Sprintf("%s/%s/pair/%s/%s/%s", c.baseURL, c.apiKey, from, to,
		strconv.FormatFloat(amount, 'f', -1, 64))
	if err := c.get(ctx, url, &payload); err != nil {
		return nil, err
	}
	return &Conversion{Rate: payload.ConversionRate, Result: payload.ConversionResult}, nil
}

func (c *Client) get(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return nil
}
