package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	googleAuthEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenEndpoint    = "https://oauth2.googleapis.com/token"
	googleUserinfoEndpoint = "https://openidconnect.googleapis.com/v1/userinfo"

	stateTokenTTL = 10 * time.Minute
)

// GoogleConfig holds the OAuth client registration. A zero value means the
// flow is disabled and the endpoints respond with ErrNotConfigured.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	StateSecret  string
}

func (c GoogleConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != "" && c.StateSecret != ""
}

// AuthURL builds the consent-screen redirect for the given state token.
func (c GoogleConfig) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.ClientID)
	q.Set("redirect_uri", c.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return googleAuthEndpoint + "?" + q.Encode()
}

// NewStateToken mints a short-lived signed token used as the OAuth state
// parameter, so the callback can reject forged redirects.
func (c GoogleConfig) NewStateToken(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.StateSecret))
}

// VerifyStateToken checks signature and expiry of a state token.
func (c GoogleConfig) VerifyStateToken(state string, now time.Time) error {
	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.StateSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return ErrInvalidState
	}
	return nil
}

// GoogleUser is the subset of the userinfo response the app needs.
type GoogleUser struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CodeExchanger swaps an authorization code for the signed-in user.
type CodeExchanger interface {
	Exchange(ctx context.Context, code string) (*GoogleUser, error)
}

// GoogleClient talks to Google's token and userinfo endpoints.
type GoogleClient struct {
	Config     GoogleConfig
	HTTPClient *http.Client

	tokenURL    string
	userinfoURL string
}

func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	return &GoogleClient{
		Config:      cfg,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		tokenURL:    googleTokenEndpoint,
		userinfoURL: googleUserinfoEndpoint,
	}
}

func (g *GoogleClient) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.Config.ClientID)
	form.Set("client_secret", g.Config.ClientSecret)
	form.Set("redirect_uri", g.Config.RedirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google token exchange returned %d: %s", resp.StatusCode, string(body))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("google token exchange returned no access token")
	}
	return g.fetchUser(ctx, tok.AccessToken)
}

func (g *GoogleClient) fetchUser(ctx context.Context, accessToken string) (*GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned %d: %s", resp.StatusCode, string(body))
	}

	var u GoogleUser
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
