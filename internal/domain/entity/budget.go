package entity

import "time"

// Budget is a spend entry attached to an itinerary. Amount is
// currency-agnostic; Currency names the unit it was spent in.
type Budget struct {
	ID          int64
	ItineraryID int64
	Category    string
	Amount      float64
	Currency    string
	SpentAt     time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
