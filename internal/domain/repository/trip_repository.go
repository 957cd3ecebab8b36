package repository

import (
	"context"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
)

// ItineraryRepository scopes every read to the owning user so a row that
// exists but belongs to someone else is indistinguishable from a missing one.
type ItineraryRepository interface {
	Create(ctx context.Context, it *entity.Itinerary) error
	// GetOwned returns the itinerary only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID int64) (*entity.Itinerary, error)
	// ListByOwner returns the user's itineraries ordered by start_date descending.
	ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]*entity.Itinerary, error)
	Update(ctx context.Context, it *entity.Itinerary) error
	Delete(ctx context.Context, id int64) error
}

// ItemRepository operates on items of an already ownership-checked itinerary.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*entity.Item, error)
	Get(ctx context.Context, id, itineraryID int64) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id, itineraryID int64) error
}

// BudgetRepository operates on budgets of an already ownership-checked itinerary.
type BudgetRepository interface {
	Create(ctx context.Context, b *entity.Budget) error
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*entity.Budget, error)
}
