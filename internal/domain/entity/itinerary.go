package entity

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("end_date must be on or after start_date")

// Itinerary is a user's named travel plan with a date range. Items and
// budgets hang off it and are removed with it.
type Itinerary struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItinerary validates the date-range invariant before anything is persisted.
func NewItinerary(userID int64, title, description string, start, end time.Time) (*Itinerary, error) {
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	return &Itinerary{
		UserID:      userID,
		Title:       title,
		Description: description,
		StartDate:   start,
		EndDate:     end,
	}, nil
}
