package entity

import "time"

// Supported social login providers.
const (
	ProviderGoogle = "google"
)

// User is identified by the (SocialProvider, SocialID) pair issued by the
// login provider. Email is optional and unique only when present.
type User struct {
	ID             int64
	SocialProvider string
	SocialID       string
	Email          string
	DisplayName    string
	LanguageCode   string
	CurrencyCode   string
	AvatarURL      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser builds a user record with the defaults applied to fresh signups.
func NewUser(provider, socialID, email, displayName, avatarURL string) *User {
	return &User{
		SocialProvider: provider,
		SocialID:       socialID,
		Email:          email,
		DisplayName:    displayName,
		LanguageCode:   "en",
		CurrencyCode:   "USD",
		AvatarURL:      avatarURL,
	}
}
