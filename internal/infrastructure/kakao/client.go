// Package kakao proxies the Kakao Local REST API (keyword/address/category
// search and coordinate reverse-geocoding).
// Docs: https://developers.kakao.com/docs/latest/en/local/dev-guide
package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://dapi.kakao.com"

// Kakao caps keyword/category pages at 15 results, address pages at 30,
// and search radius at 20 km.
const (
	maxKeywordSize = 15
	maxAddressSize = 30
	maxRadius      = 20000
)

// ErrUpstream marks a non-200 answer or transport failure from Kakao.
var ErrUpstream = errors.New("kakao upstream error")

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// HasKey reports whether a REST API key is configured.
func (c *Client) HasKey() bool { return c.apiKey != "" }

// SetBaseURL overrides the upstream host. Test hook.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// Place is the stable internal shape for one Kakao document.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"road_address"`
	Phone       string  `json:"phone"`
	URL         string  `json:"url"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Distance    string  `json:"distance"`
}

type PlacePage struct {
	Total   int     `json:"total"`
	IsEnd   bool    `json:"is_end"`
	Results []Place `json:"results"`
}

type AddressResult struct {
	Address     string   `json:"address"`
	RoadAddress string   `json:"road_address"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
}

type AddressPage struct {
	Total   int             `json:"total"`
	Results []AddressResult `json:"results"`
}

type KeywordQuery struct {
	Query  string
	X, Y   *float64 // optional center for distance sort
	Radius int
	Page   int
	Size   int
}

type CategoryQuery struct {
	CategoryCode string
	X, Y         float64
	Radius       int
	Page         int
	Size         int
}

// raw wire shapes

type rawMeta struct {
	TotalCount int  `json:"total_count"`
	IsEnd      bool `json:"is_end"`
}

type rawPlace struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	CategoryName    string `json:"category_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	Phone           string `json:"phone"`
	PlaceURL        string `json:"place_url"`
	X               string `json:"x"`
	Y               string `json:"y"`
	Distance        string `json:"distance"`
}

type rawPlaceDoc struct {
	Meta      rawMeta    `json:"meta"`
	Documents []rawPlace `json:"documents"`
}

// SearchKeyword searches places by keyword, sorted by distance when a center
// coordinate is supplied.
func (c *Client) SearchKeyword(ctx context.Context, q KeywordQuery) (*PlacePage, error) {
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(defaultPage(q.Page)))
	params.Set("size", strconv.Itoa(clampSize(q.Size, maxKeywordSize)))
	if q.X != nil && q.Y != nil {
		params.Set("x", formatCoord(*q.X))
		params.Set("y", formatCoord(*q.Y))
		params.Set("radius", strconv.Itoa(clampRadius(q.Radius)))
		params.Set("sort", "distance")
	}

	var doc rawPlaceDoc
	if err := c.get(ctx, "/v2/local/search/keyword.json", params, &doc); err != nil {
		return nil, err
	}
	return mapPlacePage(doc), nil
}

// SearchCategory searches places around a center point by category group code
// (MT1 mart, FD6 restaurant, CE7 cafe, HP8 hospital, PM9 pharmacy, ...).
func (c *Client) SearchCategory(ctx context.Context, q CategoryQuery) (*PlacePage, error) {
	params := url.Values{}
	params.Set("category_group_code", q.CategoryCode)
	params.Set("x", formatCoord(q.X))
	params.Set("y", formatCoord(q.Y))
	params.Set("radius", strconv.Itoa(clampRadius(q.Radius)))
	params.Set("page", strconv.Itoa(defaultPage(q.Page)))
	params.Set("size", strconv.Itoa(clampSize(q.Size, maxKeywordSize)))
	params.Set("sort", "distance")

	var doc rawPlaceDoc
	if err := c.get(ctx, "/v2/local/search/category.json", params, &doc); err != nil {
		return nil, err
	}
	return mapPlacePage(doc), nil
}

// SearchAddress geocodes an address string.
func (c *Client) SearchAddress(ctx context.Context, query string, page, size int) (*AddressPage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(defaultPage(page)))
	params.Set("size", strconv.Itoa(clampSize(size, maxAddressSize)))

	var doc struct {
		Meta      rawMeta `json:"meta"`
		Documents []struct {
			AddressName string `json:"address_name"`
			RoadAddress struct {
				AddressName string `json:"address_name"`
			} `json:"road_address"`
			X string `json:"x"`
			Y string `json:"y"`
		} `json:"documents"`
	}
	if err := c.get(ctx, "/v2/local/search/address.json", params, &doc); err != nil {
		return nil, err
	}

	page_ := &AddressPage{Total: doc.Meta.TotalCount, Results: make([]AddressResult, 0, len(doc.Documents))}
	for _, d := range doc.Documents {
		res := AddressResult{Address: d.AddressName, RoadAddress: d.RoadAddress.AddressName}
		if x, err := strconv.ParseFloat(d.X, 64); err == nil {
			res.Longitude = &x
		}
		if y, err := strconv.ParseFloat(d.Y, 64); err == nil {
			res.Latitude = &y
		}
		page_.Results = append(page_.Results, res)
	}
	return page_, nil
}

// Coord2Address reverse-geocodes a coordinate to its first matching address.
// Returns ok=false when Kakao has no address for the point.
func (c *Client) Coord2Address(ctx context.Context, x, y float64) (*AddressResult, bool, error) {
	params := url.Values{}
	params.Set("x", formatCoord(x))
	params.Set("y", formatCoord(y))

	var doc struct {
		Documents []struct {
			Address struct {
				AddressName string `json:"address_name"`
			} `json:"address"`
			RoadAddress struct {
				AddressName string `json:"address_name"`
			} `json:"road_address"`
		} `json:"documents"`
	}
	if err := c.get(ctx, "/v2/local/geo/coord2address.json", params, &doc); err != nil {
		return nil, false, err
	}
	if len(doc.Documents) == 0 {
		return nil, false, nil
	}
	d := doc.Documents[0]
	return &AddressResult{
		Address:     d.Address.AddressName,
		RoadAddress: d.RoadAddress.AddressName,
		Longitude:   &x,
		Latitude:    &y,
	}, true, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

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

func mapPlacePage(doc rawPlaceDoc) *PlacePage {
	page := &PlacePage{Total: doc.Meta.TotalCount, IsEnd: doc.Meta.IsEnd, Results: make([]Place, 0, len(doc.Documents))}
	for _, d := range doc.Documents {
		lng, _ := strconv.ParseFloat(d.X, 64)
		lat, _ := strconv.ParseFloat(d.Y, 64)
		page.Results = append(page.Results, Place{
			ID:          d.ID,
			Name:        d.PlaceName,
			Category:    d.CategoryName,
			Address:     d.AddressName,
			RoadAddress: d.RoadAddressName,
			Phone:       d.Phone,
			URL:         d.PlaceURL,
			Longitude:   lng,
			Latitude:    lat,
			Distance:    d.Distance,
		})
	}
	return page
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func defaultPage(p int) int {
	if p < 1 {
		return 1
	}
	return p
}

func clampSize(size, max int) int {
	if size < 1 {
		return max
	}
	if size > max {
		return max
	}
	return size
}

func clampRadius(r int) int {
	if r <= 0 || r > maxRadius {
		return maxRadius
	}
	return r
}
