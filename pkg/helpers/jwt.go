package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager handles generation and validation of session JWT tokens.
// Access and refresh tokens are signed with separate HS256 secrets so a
// leaked refresh secret cannot mint access tokens and vice versa.
type JWTManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived token with the user id as subject.
func (m *JWTManager) GenerateAccessToken(userID int64) (string, time.Time, error) {
	return generate(userID, m.AccessSecret, m.AccessTTL)
}

// GenerateRefreshToken issues a day-scale token with the user id as subject.
func (m *JWTManager) GenerateRefreshToken(userID int64) (string, time.Time, error) {
	return generate(userID, m.RefreshSecret, m.RefreshTTL)
}

// ParseAccessToken verifies signature and expiry and returns the subject user id.
func (m *JWTManager) ParseAccessToken(tokenStr string) (int64, error) {
	return parseToken(tokenStr, m.AccessSecret)
}

// ParseRefreshToken verifies signature and expiry and returns the subject user id.
func (m *JWTManager) ParseRefreshToken(tokenStr string) (int64, error) {
	return parseToken(tokenStr, m.RefreshSecret)
}

func generate(userID int64, secret []byte, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(secret)
	return s, exp, err
}

func parseToken(tokenStr string, secret []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !tkn.Valid {
		return 0, errors.New("invalid token")
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errors.New("malformed subject claim")
	}
	return uid, nil
}
