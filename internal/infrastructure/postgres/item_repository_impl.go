package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	"github.com/tripnote/travel-planner-api/internal/domain/repository"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itinerary_items
			(itinerary_id, place_name, latitude, longitude, visit_date, visit_order, memo, place_type, kakao_place_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, item.ItineraryID, item.PlaceName, item.Latitude, item.Longitude,
		item.VisitDate, item.VisitOrder, item.Memo, item.PlaceType, item.KakaoPlaceID)

	return row.Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *ItemRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*entity.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, itinerary_id, place_name, latitude, longitude, visit_date, visit_order,
		       COALESCE(memo, ''), COALESCE(place_type, ''), COALESCE(kakao_place_id, ''),
		       created_at, updated_at
		FROM itinerary_items
		WHERE itinerary_id = $1
		ORDER BY id
	`, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ItemRepository) Get(ctx context.Context, id, itineraryID int64) (*entity.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, itinerary_id, place_name, latitude, longitude, visit_date, visit_order,
		       COALESCE(memo, ''), COALESCE(place_type, ''), COALESCE(kakao_place_id, ''),
		       created_at, updated_at
		FROM itinerary_items
		WHERE id = $1 AND itinerary_id = $2
	`, id, itineraryID)
	return scanItem(row)
}

func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE itinerary_items
		SET place_name = $1, latitude = $2, longitude = $3, visit_date = $4, visit_order = $5,
		    memo = $6, place_type = $7, kakao_place_id = $8, updated_at = $9
		WHERE id = $10 AND itinerary_id = $11
	`, item.PlaceName, item.Latitude, item.Longitude, item.VisitDate, item.VisitOrder,
		item.Memo, item.PlaceType, item.KakaoPlaceID, item.UpdatedAt, item.ID, item.ItineraryID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id, itineraryID int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM itinerary_items WHERE id = $1 AND itinerary_id = $2
	`, id, itineraryID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	item := &entity.Item{}
	if err := row.Scan(&item.ID, &item.ItineraryID, &item.PlaceName, &item.Latitude, &item.Longitude,
		&item.VisitDate, &item.VisitOrder, &item.Memo, &item.PlaceType, &item.KakaoPlaceID,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
