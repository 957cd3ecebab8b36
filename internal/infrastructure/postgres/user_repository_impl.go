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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (social_provider, social_id, email, display_name, language_code, currency_code, avatar_url)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, u.SocialProvider, u.SocialID, u.Email, u.DisplayName, u.LanguageCode, u.CurrencyCode, u.AvatarURL)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, social_provider, social_id, COALESCE(email, ''), COALESCE(display_name, ''),
		       language_code, currency_code, COALESCE(avatar_url, ''), created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetBySocial(ctx context.Context, provider, socialID string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, social_provider, social_id, COALESCE(email, ''), COALESCE(display_name, ''),
		       language_code, currency_code, COALESCE(avatar_url, ''), created_at, updated_at
		FROM users
		WHERE social_provider = $1 AND social_id = $2
	`, provider, socialID)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = NULLIF($1, ''), display_name = $2, language_code = $3,
		    currency_code = $4, avatar_url = $5, updated_at = $6
		WHERE id = $7
	`, u.Email, u.DisplayName, u.LanguageCode, u.CurrencyCode, u.AvatarURL, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.SocialProvider, &u.SocialID, &u.Email, &u.DisplayName,
		&u.LanguageCode, &u.CurrencyCode, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
