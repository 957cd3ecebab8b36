package application

import (
	"context"
	"errors"
	"time"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
)

var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrItemNotFound      = errors.New("item not found")
)

// TripService owns the ownership-checked CRUD over itineraries and their
// nested items and budgets. Every child operation goes through ResolveOwned
// first, so a parent that is missing or owned by someone else is a uniform
// repo.ErrNotFound before any child row is touched.
type TripService struct {
	Itineraries repo.ItineraryRepository
	Items       repo.ItemRepository
	Budgets     repo.BudgetRepository
}

func NewTripService(itineraries repo.ItineraryRepository, items repo.ItemRepository, budgets repo.BudgetRepository) *TripService {
	return &TripService{Itineraries: itineraries, Items: items, Budgets: budgets}
}

// ResolveOwned is the shared authorization capability: it returns the
// itinerary only when it belongs to userID, ErrItineraryNotFound otherwise.
// Missing and not-owned are indistinguishable on purpose.
func (s *TripService) ResolveOwned(ctx context.Context, itineraryID, userID int64) (*entity.Itinerary, error) {
	it, err := s.Itineraries.GetOwned(ctx, itineraryID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItineraryNotFound
	}
	return it, err
}

// Itineraries

type ItineraryInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

func (s *TripService) ListItineraries(ctx context.Context, userID int64, limit, offset int) ([]*entity.Itinerary, error) {
	return s.Itineraries.ListByOwner(ctx, userID, limit, offset)
}

func (s *TripService) CreateItinerary(ctx context.Context, userID int64, in ItineraryInput) (*entity.Itinerary, error) {
	it, err := entity.NewItinerary(userID, in.Title, in.Description, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.Itineraries.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *TripService) UpdateItinerary(ctx context.Context, itineraryID, userID int64, in ItineraryInput) (*entity.Itinerary, error) {
	it, err := s.ResolveOwned(ctx, itineraryID, userID)
	if err != nil {
		return nil, err
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, entity.ErrInvalidDateRange
	}
	it.Title = in.Title
	it.Description = in.Description
	it.StartDate = in.StartDate
	it.EndDate = in.EndDate
	if err := s.Itineraries.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *TripService) DeleteItinerary(ctx context.Context, itineraryID, userID int64) error {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return err
	}
	return s.Itineraries.Delete(ctx, itineraryID)
}

// Items

type ItemInput struct {
	PlaceName    string
	Latitude     float64
	Longitude    float64
	VisitDate    *time.Time
	VisitOrder   *int
	Memo         string
	PlaceType    string
	KakaoPlaceID string
}

func (s *TripService) ListItems(ctx context.Context, itineraryID, userID int64) ([]*entity.Item, error) {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return nil, err
	}
	return s.Items.ListByItinerary(ctx, itineraryID)
}

func (s *TripService) AddItem(ctx context.Context, itineraryID, userID int64, in ItemInput) (*entity.Item, error) {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return nil, err
	}
	item := &entity.Item{
		ItineraryID:  itineraryID,
		PlaceName:    in.PlaceName,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		VisitDate:    in.VisitDate,
		VisitOrder:   in.VisitOrder,
		Memo:         in.Memo,
		PlaceType:    in.PlaceType,
		KakaoPlaceID: in.KakaoPlaceID,
	}
	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces every provided field of the item.
func (s *TripService) UpdateItem(ctx context.Context, itineraryID, itemID, userID int64, in ItemInput) (*entity.Item, error) {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return nil, err
	}
	item, err := s.Items.Get(ctx, itemID, itineraryID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	} else if err != nil {
		return nil, err
	}
	item.PlaceName = in.PlaceName
	item.Latitude = in.Latitude
	item.Longitude = in.Longitude
	item.VisitDate = in.VisitDate
	item.VisitOrder = in.VisitOrder
	item.Memo = in.Memo
	item.PlaceType = in.PlaceType
	item.KakaoPlaceID = in.KakaoPlaceID
	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *TripService) DeleteItem(ctx context.Context, itineraryID, itemID, userID int64) error {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return err
	}
	if err := s.Items.Delete(ctx, itemID, itineraryID); errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	} else if err != nil {
		return err
	}
	return nil
}

// Budgets

type BudgetInput struct {
	Category    string
	Amount      float64
	Currency    string
	SpentAt     time.Time
	Description string
}

func (s *TripService) ListBudgets(ctx context.Context, itineraryID, userID int64) ([]*entity.Budget, error) {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return nil, err
	}
	return s.Budgets.ListByItinerary(ctx, itineraryID)
}

func (s *TripService) AddBudget(ctx context.Context, itineraryID, userID int64, in BudgetInput) (*entity.Budget, error) {
	if _, err := s.ResolveOwned(ctx, itineraryID, userID); err != nil {
		return nil, err
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	b := &entity.Budget{
		ItineraryID: itineraryID,
		Category:    in.Category,
		Amount:      in.Amount,
		Currency:    currency,
		SpentAt:     in.SpentAt,
		Description: in.Description,
	}
	if err := s.Budgets.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
