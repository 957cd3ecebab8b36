package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	"github.com/tripnote/travel-planner-api/internal/domain/repository"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

func (r *BudgetRepository) Create(ctx context.Context, b *entity.Budget) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO budgets (itinerary_id, category, amount, currency, spent_at, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, b.ItineraryID, b.Category, b.Amount, b.Currency, b.SpentAt, b.Description)

	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BudgetRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*entity.Budget, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, itinerary_id, category, amount, currency, spent_at, COALESCE(description, ''),
		       created_at, updated_at
		FROM budgets
		WHERE itinerary_id = $1
		ORDER BY spent_at
	`, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Budget, 0)
	for rows.Next() {
		b := &entity.Budget{}
		if err := rows.Scan(&b.ID, &b.ItineraryID, &b.Category, &b.Amount, &b.Currency,
			&b.SpentAt, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, repository.ErrNotFound
			}
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ repository.BudgetRepository = (*BudgetRepository)(nil)
