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

type ItineraryRepository struct {
	pool *pgxpool.Pool
}

func NewItineraryRepository(pool *pgxpool.Pool) *ItineraryRepository {
	return &ItineraryRepository{pool: pool}
}

func (r *ItineraryRepository) Create(ctx context.Context, it *entity.Itinerary) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itineraries (user_id, title, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, it.UserID, it.Title, it.Description, it.StartDate, it.EndDate)

	return row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *ItineraryRepository) GetOwned(ctx context.Context, id, userID int64) (*entity.Itinerary, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, COALESCE(description, ''), start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanItinerary(row)
}

func (r *ItineraryRepository) ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]*entity.Itinerary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, COALESCE(description, ''), start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY start_date DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *ItineraryRepository) Update(ctx context.Context, it *entity.Itinerary) error {
	it.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE itineraries
		SET title = $1, description = $2, start_date = $3, end_date = $4, updated_at = $5
		WHERE id = $6
	`, it.Title, it.Description, it.StartDate, it.EndDate, it.UpdatedAt, it.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItineraryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanItinerary(row pgx.Row) (*entity.Itinerary, error) {
	it := &entity.Itinerary{}
	if err := row.Scan(&it.ID, &it.UserID, &it.Title, &it.Description,
		&it.StartDate, &it.EndDate, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

var _ repository.ItineraryRepository = (*ItineraryRepository)(nil)
