package application

import (
	"context"
	"sort"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
)

// In-memory repository fakes mirroring the SQL-backed behavior. The foreign-key
// cascades the schema declares only apply when the fakes are linked through
// newFakeRepos.

// newFakeRepos wires the four fakes together so deletes cascade the way the
// ON DELETE CASCADE constraints do: user -> itineraries -> items and budgets.
func newFakeRepos() (*fakeUserRepo, *fakeItineraryRepo, *fakeItemRepo, *fakeBudgetRepo) {
	users := newFakeUserRepo()
	itineraries := newFakeItineraryRepo()
	items := newFakeItemRepo()
	budgets := newFakeBudgetRepo()
	itineraries.items = items
	itineraries.budgets = budgets
	users.trips = itineraries
	return users, itineraries, items, budgets
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
	trips  *fakeItineraryRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetBySocial(_ context.Context, provider, socialID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.SocialProvider == provider && u.SocialID == socialID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	if f.trips != nil {
		f.trips.deleteByOwner(id)
	}
	return nil
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

type fakeItineraryRepo struct {
	nextID      int64
	itineraries map[int64]*entity.Itinerary
	items       *fakeItemRepo
	budgets     *fakeBudgetRepo
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{nextID: 1, itineraries: map[int64]*entity.Itinerary{}}
}

func (f *fakeItineraryRepo) Create(_ context.Context, it *entity.Itinerary) error {
	it.ID = f.nextID
	f.nextID++
	cp := *it
	f.itineraries[it.ID] = &cp
	return nil
}

func (f *fakeItineraryRepo) GetOwned(_ context.Context, id, userID int64) (*entity.Itinerary, error) {
	it, ok := f.itineraries[id]
	if !ok || it.UserID != userID {
		return nil, repo.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItineraryRepo) ListByOwner(_ context.Context, userID int64, limit, offset int) ([]*entity.Itinerary, error) {
	out := make([]*entity.Itinerary, 0)
	for _, it := range f.itineraries {
		if it.UserID == userID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	if offset >= len(out) {
		return []*entity.Itinerary{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItineraryRepo) Update(_ context.Context, it *entity.Itinerary) error {
	if _, ok := f.itineraries[it.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *it
	f.itineraries[it.ID] = &cp
	return nil
}

func (f *fakeItineraryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.itineraries[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.itineraries, id)
	f.cascade(id)
	return nil
}

func (f *fakeItineraryRepo) deleteByOwner(userID int64) {
	for id, it := range f.itineraries {
		if it.UserID == userID {
			delete(f.itineraries, id)
			f.cascade(id)
		}
	}
}

func (f *fakeItineraryRepo) cascade(itineraryID int64) {
	if f.items != nil {
		f.items.deleteByItinerary(itineraryID)
	}
	if f.budgets != nil {
		f.budgets.deleteByItinerary(itineraryID)
	}
}

var _ repo.ItineraryRepository = (*fakeItineraryRepo)(nil)

type fakeItemRepo struct {
	nextID int64
	items  map[int64]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{nextID: 1, items: map[int64]*entity.Item{}}
}

func (f *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) ListByItinerary(_ context.Context, itineraryID int64) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0)
	for _, item := range f.items {
		if item.ItineraryID == itineraryID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeItemRepo) Get(_ context.Context, id, itineraryID int64) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok || item.ItineraryID != itineraryID {
		return nil, repo.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	existing, ok := f.items[item.ID]
	if !ok || existing.ItineraryID != item.ItineraryID {
		return repo.ErrNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id, itineraryID int64) error {
	item, ok := f.items[id]
	if !ok || item.ItineraryID != itineraryID {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) deleteByItinerary(itineraryID int64) {
	for id, item := range f.items {
		if item.ItineraryID == itineraryID {
			delete(f.items, id)
		}
	}
}

var _ repo.ItemRepository = (*fakeItemRepo)(nil)

type fakeBudgetRepo struct {
	nextID  int64
	budgets map[int64]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{nextID: 1, budgets: map[int64]*entity.Budget{}}
}

func (f *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	b.ID = f.nextID
	f.nextID++
	cp := *b
	f.budgets[b.ID] = &cp
	return nil
}

func (f *fakeBudgetRepo) ListByItinerary(_ context.Context, itineraryID int64) ([]*entity.Budget, error) {
	out := make([]*entity.Budget, 0)
	for _, b := range f.budgets {
		if b.ItineraryID == itineraryID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpentAt.Before(out[j].SpentAt) })
	return out, nil
}

func (f *fakeBudgetRepo) deleteByItinerary(itineraryID int64) {
	for id, b := range f.budgets {
		if b.ItineraryID == itineraryID {
			delete(f.budgets, id)
		}
	}
}

var _ repo.BudgetRepository = (*fakeBudgetRepo)(nil)
