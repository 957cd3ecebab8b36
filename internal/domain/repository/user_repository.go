package repository

import (
	"context"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetBySocial(ctx context.Context, provider, socialID string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the user; itineraries and their children go with it via
	// ON DELETE CASCADE.
	Delete(ctx context.Context, id int64) error
}
