package application

import (
	"context"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
)

// UserService covers the profile operations on the authenticated user.
type UserService struct {
	Users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{Users: users}
}

// UpdateProfileInput carries partial profile updates; nil fields are untouched.
type UpdateProfileInput struct {
	Email        *string
	DisplayName  *string
	LanguageCode *string
	CurrencyCode *string
	AvatarURL    *string
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.DisplayName != nil {
		u.DisplayName = *in.DisplayName
	}
	if in.LanguageCode != nil {
		u.LanguageCode = *in.LanguageCode
	}
	if in.CurrencyCode != nil {
		u.CurrencyCode = *in.CurrencyCode
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the account. Itineraries, items and budgets cascade away in
// the database.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.Users.Delete(ctx, id)
}
