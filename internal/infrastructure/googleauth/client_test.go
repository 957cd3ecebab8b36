package googleauth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKid = "test-kid"

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func jwksServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := jwksDocument{Keys: []jwk{{
			Kty: "RSA",
			Kid: testKid,
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			E:   "AQAB",
		}}}
		_ = json.NewEncoder(w).Encode(doc)
	}))
}

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func googleClaims(aud string) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":     "https://accounts.google.com",
		"aud":     aud,
		"sub":     "google-sub-123",
		"email":   "traveler@example.com",
		"name":    "Traveler",
		"picture": "https://example.com/p.png",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
}

func TestExchangeVerifiesIDToken(t *testing.T) {
	key := newTestKey(t)
	jwks := jwksServer(t, key)
	defer jwks.Close()

	idToken := signIDToken(t, key, googleClaims("client-id"))
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "at", IDToken: idToken})
	}))
	defer tokenSrv.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetTokenURL(tokenSrv.URL)
	c.SetJWKSURL(jwks.URL)

	identity, err := c.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.Sub)
	assert.Equal(t, "traveler@example.com", identity.Email)
	assert.Equal(t, "Traveler", identity.Name)
}

func TestExchangeRejectedCode(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer tokenSrv.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetTokenURL(tokenSrv.URL)

	_, err := c.Exchange(context.Background(), "bad-code")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestExchangeMissingIDToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "at"})
	}))
	defer tokenSrv.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetTokenURL(tokenSrv.URL)

	_, err := c.Exchange(context.Background(), "the-code")
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestVerifyIDTokenAudienceMismatch(t *testing.T) {
	key := newTestKey(t)
	jwks := jwksServer(t, key)
	defer jwks.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetJWKSURL(jwks.URL)

	idToken := signIDToken(t, key, googleClaims("someone-else"))
	_, err := c.VerifyIDToken(context.Background(), idToken)
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestVerifyIDTokenWrongIssuer(t *testing.T) {
	key := newTestKey(t)
	jwks := jwksServer(t, key)
	defer jwks.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetJWKSURL(jwks.URL)

	claims := googleClaims("client-id")
	claims["iss"] = "https://evil.example.com"
	idToken := signIDToken(t, key, claims)

	_, err := c.VerifyIDToken(context.Background(), idToken)
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestVerifyIDTokenBadSignature(t *testing.T) {
	key := newTestKey(t)
	otherKey := newTestKey(t)
	jwks := jwksServer(t, key)
	defer jwks.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetJWKSURL(jwks.URL)

	idToken := signIDToken(t, otherKey, googleClaims("client-id"))
	_, err := c.VerifyIDToken(context.Background(), idToken)
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestVerifyIDTokenExpired(t *testing.T) {
	key := newTestKey(t)
	jwks := jwksServer(t, key)
	defer jwks.Close()

	c := New("client-id", "secret", "http://localhost/callback")
	c.SetJWKSURL(jwks.URL)

	claims := googleClaims("client-id")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	idToken := signIDToken(t, key, claims)

	_, err := c.VerifyIDToken(context.Background(), idToken)
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}
