package entity

import "time"

// Item is one planned stop inside an itinerary. VisitOrder is a display hint
// only; duplicates are allowed. KakaoPlaceID is an opaque reference into the
// Kakao Local catalog with no referential integrity enforced.
type Item struct {
	ID           int64
	ItineraryID  int64
	PlaceName    string
	Latitude     float64
	Longitude    float64
	VisitDate    *time.Time
	VisitOrder   *int
	Memo         string
	PlaceType    string
	KakaoPlaceID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
