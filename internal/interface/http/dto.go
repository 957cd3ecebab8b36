package handlers

import (
	"time"

	"github.com/tripnote/travel-planner-api/internal/application"
	"github.com/tripnote/travel-planner-api/internal/domain/entity"
)

const dateOnly = "2006-01-02"

type userDTO struct {
	ID           int64     `json:"id"`
	Provider     string    `json:"provider"`
	Email        string    `json:"email,omitempty"`
	DisplayName  string    `json:"display_name"`
	LanguageCode string    `json:"language_code"`
	CurrencyCode string    `json:"currency_code"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toUserDTO(u *entity.User) userDTO {
	return userDTO{
		ID:           u.ID,
		Provider:     u.SocialProvider,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		LanguageCode: u.LanguageCode,
		CurrencyCode: u.CurrencyCode,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
	}
}

type tokenDTO struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	TokenType        string    `json:"token_type"`
}

func toTokenDTO(p application.TokenPair) tokenDTO {
	return tokenDTO{
		AccessToken:      p.AccessToken,
		AccessExpiresAt:  p.AccessTokenExpiry,
		RefreshToken:     p.RefreshToken,
		RefreshExpiresAt: p.RefreshTokenExpiry,
		TokenType:        "bearer",
	}
}

type itineraryDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toItineraryDTO(it *entity.Itinerary) itineraryDTO {
	return itineraryDTO{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		StartDate:   it.StartDate.Format(dateOnly),
		EndDate:     it.EndDate.Format(dateOnly),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItineraryDTOs(list []*entity.Itinerary) []itineraryDTO {
	out := make([]itineraryDTO, 0, len(list))
	for _, it := range list {
		out = append(out, toItineraryDTO(it))
	}
	return out
}

type itemDTO struct {
	ID           int64     `json:"id"`
	ItineraryID  int64     `json:"itinerary_id"`
	PlaceName    string    `json:"place_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	VisitDate    *string   `json:"visit_date,omitempty"`
	VisitOrder   *int      `json:"visit_order,omitempty"`
	Memo         string    `json:"memo,omitempty"`
	PlaceType    string    `json:"place_type,omitempty"`
	KakaoPlaceID string    `json:"kakao_place_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toItemDTO(it *entity.Item) itemDTO {
	dto := itemDTO{
		ID:           it.ID,
		ItineraryID:  it.ItineraryID,
		PlaceName:    it.PlaceName,
		Latitude:     it.Latitude,
		Longitude:    it.Longitude,
		VisitOrder:   it.VisitOrder,
		Memo:         it.Memo,
		PlaceType:    it.PlaceType,
		KakaoPlaceID: it.KakaoPlaceID,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	if it.VisitDate != nil {
		d := it.VisitDate.Format(dateOnly)
		dto.VisitDate = &d
	}
	return dto
}

func toItemDTOs(list []*entity.Item) []itemDTO {
	out := make([]itemDTO, 0, len(list))
	for _, it := range list {
		out = append(out, toItemDTO(it))
	}
	return out
}

type budgetDTO struct {
	ID          int64     `json:"id"`
	ItineraryID int64     `json:"itinerary_id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	SpentAt     time.Time `json:"spent_at"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBudgetDTO(b *entity.Budget) budgetDTO {
	return budgetDTO{
		ID:          b.ID,
		ItineraryID: b.ItineraryID,
		Category:    b.Category,
		Amount:      b.Amount,
		Currency:    b.Currency,
		SpentAt:     b.SpentAt,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

func toBudgetDTOs(list []*entity.Budget) []budgetDTO {
	out := make([]budgetDTO, 0, len(list))
	for _, b := range list {
		out = append(out, toBudgetDTO(b))
	}
	return out
}
