// Package tourapi proxies KorService1 of the Korean government TourAPI.
// The upstream wraps everything in response.body.items.item and encodes a
// single result as an object instead of a one-element array, so responses are
// walked with gjson rather than rigid structs.
package tourapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "http://apis.data.go.kr/B551011/KorService1"

// ErrUpstream marks a non-200 answer or transport failure from TourAPI.
var ErrUpstream = errors.New("tour api upstream error")

type Client struct {
	serviceKey string
	baseURL    string
	http       *http.Client
}

// New builds a client. TourAPI is slow on cold queries, hence the long timeout.
func New(serviceKey string) *Client {
	return &Client{
		serviceKey: serviceKey,
		baseURL:    defaultBaseURL,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// HasKey reports whether a service key is configured.
func (c *Client) HasKey() bool { return c.serviceKey != "" }

// SetBaseURL overrides the upstream host. Test hook.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// Spot is the stable internal shape for one tourist-spot listing.
type Spot struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Address   string  `json:"address"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Thumbnail string  `json:"thumbnail"`
	MapX      float64 `json:"map_x"`
	MapY      float64 `json:"map_y"`
	Tel       string  `json:"tel"`
}

// SpotDetail extends Spot with the long-form fields of detailCommon1.
type SpotDetail struct {
	Spot
	DetailAddress string `json:"detail_address"`
	Homepage      string `json:"homepage"`
	Overview      string `json:"overview"`
	Zipcode       string `json:"zipcode"`
}

type SearchQuery struct {
	Keyword       string
	MapX, MapY    float64
	Radius        int
	Rows          int
	ContentTypeID string
}

type PopularQuery struct {
	AreaCode      string
	ContentTypeID string
	Rows          int
}

// Search runs a location-based keyword search (locationBasedList1).
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Spot, error) {
	params := c.baseParams()
	params.Set("mapX", strconv.FormatFloat(q.MapX, 'f', -1, 64))
	params.Set("mapY", strconv.FormatFloat(q.MapY, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(q.Radius))
	params.Set("numOfRows", strconv.Itoa(q.Rows))
	params.Set("keyword", q.Keyword)
	params.Set("arrange", "P")
	if q.ContentTypeID != "" {
		params.Set("contentTypeId", q.ContentTypeID)
	}

	body, err := c.get(ctx, "/locationBasedList1", params)
	if err != nil {
		return nil, err
	}
	return mapSpots(items(body)), nil
}

// Popular lists spots for an area ordered by popularity (areaBasedList1).
func (c *Client) Popular(ctx context.Context, q PopularQuery) ([]Spot, error) {
	params := c.baseParams()
	params.Set("contentTypeId", q.ContentTypeID)
	params.Set("numOfRows", strconv.Itoa(q.Rows))
	params.Set("arrange", "P")
	if q.AreaCode != "" {
		params.Set("areaCode", q.AreaCode)
	}

	body, err := c.get(ctx, "/areaBasedList1", params)
	if err != nil {
		return nil, err
	}
	return mapSpots(items(body)), nil
}

// Detail fetches long-form information for a content id (detailCommon1).
// ok=false when the id is unknown upstream.
func (c *Client) Detail(ctx context.Context, contentID string) (*SpotDetail, bool, error) {
	params := c.baseParams()
	params.Set("contentId", contentID)
	params.Set("defaultYN", "Y")
	params.Set("firstImageYN", "Y")
	params.Set("addrinfoYN", "Y")
	params.Set("mapinfoYN", "Y")
	params.Set("overviewYN", "Y")

	body, err := c.get(ctx, "/detailCommon1", params)
	if err != nil {
		return nil, false, err
	}
	list := items(body)
	if len(list) == 0 {
		return nil, false, nil
	}
	item := list[0]
	return &SpotDetail{
		Spot:          mapSpot(item),
		DetailAddress: item.Get("addr2").String(),
		Homepage:      item.Get("homepage").String(),
		Overview:      item.Get("overview").String(),
		Zipcode:       item.Get("zipcode").String(),
	}, true, nil
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("_type", "json")
	params.Set("MobileOS", "ETC")
	params.Set("MobileApp", "TravelPlanner")
	return params
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return body, nil
}

// items normalizes response.body.items.item into a slice whether the upstream
// sent an array, a single object, or nothing.
func items(body []byte) []gjson.Result {
	node := gjson.GetBytes(body, "response.body.items.item")
	if !node.Exists() {
		return nil
	}
	if node.IsArray() {
		return node.Array()
	}
	return []gjson.Result{node}
}

func mapSpots(list []gjson.Result) []Spot {
	out := make([]Spot, 0, len(list))
	for _, item := range list {
		out = append(out, mapSpot(item))
	}
	return out
}

func mapSpot(item gjson.Result) Spot {
	return Spot{
		ID:        item.Get("contentid").String(),
		Title:     item.Get("title").String(),
		Address:   item.Get("addr1").String(),
		Category:  item.Get("cat3").String(),
		Image:     item.Get("firstimage").String(),
		Thumbnail: item.Get("firstimage2").String(),
		MapX:      item.Get("mapx").Float(),
		MapY:      item.Get("mapy").Float(),
		Tel:       item.Get("tel").String(),
	}
}
