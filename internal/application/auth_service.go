package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tripnote/travel-planner-api/internal/domain/entity"
	repo "github.com/tripnote/travel-planner-api/internal/domain/repository"
	"github.com/tripnote/travel-planner-api/internal/infrastructure/googleauth"
	"github.com/tripnote/travel-planner-api/pkg/helpers"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported social provider")
	ErrInvalidRefresh      = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
)

// TokenPair is one issued access/refresh token set.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AuthService exchanges social authorization codes for local sessions.
type AuthService struct {
	Users  repo.UserRepository
	Google *googleauth.Client
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, google *googleauth.Client, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Google: google, JWT: jwt, Logger: logger}
}

// Login exchanges the provider authorization code, finds or creates the local
// user, and issues a token pair.
func (s *AuthService) Login(ctx context.Context, provider, code string) (*entity.User, TokenPair, error) {
	if provider != entity.ProviderGoogle {
		return nil, TokenPair{}, ErrUnsupportedProvider
	}

	identity, err := s.Google.Exchange(ctx, code)
	if err != nil {
		return nil, TokenPair{}, err
	}

	u, err := s.Users.GetBySocial(ctx, provider, identity.Sub)
	if errors.Is(err, repo.ErrNotFound) {
		u = entity.NewUser(provider, identity.Sub, identity.Email, identity.Name, identity.Picture)
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, TokenPair{}, err
		}
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "provider": provider}).Info("user created from social login")
	} else if err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issue(u.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh validates a refresh token and issues a fresh pair for its subject.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	uid, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}
	if _, err := s.Users.GetByID(ctx, uid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TokenPair{}, ErrUserNotFound
		}
		return TokenPair{}, err
	}
	return s.issue(uid)
}

func (s *AuthService) issue(userID int64) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}
