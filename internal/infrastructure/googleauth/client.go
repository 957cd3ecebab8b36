// Package googleauth exchanges Google OAuth authorization codes and verifies
// the ID tokens Google returns. Unlike the usual copy-paste flow, the ID token
// signature IS verified here, against Google's published JWKS, together with
// issuer and audience.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	tokenEndpoint = "https://oauth2.googleapis.com/token"
	jwksEndpoint  = "https://www.googleapis.com/oauth2/v3/certs"
)

var (
	// ErrInvalidCode marks a rejected authorization code (upstream said no).
	ErrInvalidCode = errors.New("invalid authorization code")
	// ErrUpstream marks transport failures and timeouts talking to Google.
	ErrUpstream = errors.New("google upstream error")
	// ErrInvalidIDToken marks a token that failed signature/issuer/audience checks.
	ErrInvalidIDToken = errors.New("invalid id token")
)

// Identity is the subset of ID-token claims the application consumes.
type Identity struct {
	Sub     string
	Email   string
	Name    string
	Picture string
}

type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	http         *http.Client
	tokenURL     string
	keys         *jwksCache
}

func New(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		http:         &http.Client{Timeout: 10 * time.Second},
		tokenURL:     tokenEndpoint,
		keys:         newJWKSCache(jwksEndpoint, 10*time.Second),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Exchange trades an authorization code for an identity. The exchanged ID
// token is verified before any claim is trusted.
func (c *Client) Exchange(ctx context.Context, code string) (*Identity, error) {
	form := url.Values{
		"code":          {code},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"redirect_uri":  {c.redirectURI},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Google answers 400/401 for bad or replayed codes.
		return nil, ErrInvalidCode
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("%w: decode token response: %v", ErrUpstream, err)
	}
	if tok.IDToken == "" {
		return nil, ErrInvalidIDToken
	}

	return c.VerifyIDToken(ctx, tok.IDToken)
}

// VerifyIDToken checks signature (RS256 against Google's JWKS), issuer,
// audience, and expiry, and returns the identity claims.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	claims, err := c.keys.verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	if claims.Issuer != "accounts.google.com" && claims.Issuer != "https://accounts.google.com" {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidIDToken, claims.Issuer)
	}
	if !claims.hasAudience(c.clientID) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidIDToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidIDToken)
	}

	return &Identity{
		Sub:     claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// SetTokenURL overrides the token endpoint. Test hook.
func (c *Client) SetTokenURL(u string) { c.tokenURL = u }

// SetJWKSURL overrides the JWKS endpoint. Test hook.
func (c *Client) SetJWKSURL(u string) { c.keys.url = u }
