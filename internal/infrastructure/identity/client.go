// Package identity adapts an Identity Toolkit compatible REST API to
// ports.IdentityGateway.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jovens-paroquia/membership/internal/core/domain"
)

const (
	DefaultBaseURL  = "https://identitytoolkit.googleapis.com/v1"
	DefaultTokenURL = "https://securetoken.googleapis.com/v1"
	defaultTimeout  = 10 * time.Second
)

// Config captures the settings of the identity REST API.
type Config struct {
	BaseURL  string
	TokenURL string
	APIKey   string
	Timeout  time.Duration
}

// Credentials is what the provider returns for a signed-in account.
type Credentials struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	ExpiresIn    string `json:"expiresIn"`
}

// Client performs the raw REST calls. Failures are *domain.GatewayError.
type Client struct {
	baseURL  string
	tokenURL string
	apiKey   string
	http     *http.Client
}

// NewClient builds a Client, applying defaults for empty fields.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	token := strings.TrimRight(cfg.TokenURL, "/")
	if token == "" {
		token = DefaultTokenURL
	}
	return &Client{
		baseURL:  base,
		tokenURL: token,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Credentials, error) {
	var out Credentials
	err := c.call(ctx, c.baseURL, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	var out Credentials
	err := c.call(ctx, c.baseURL, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignInWithCustomToken(ctx context.Context, token string) (*Credentials, error) {
	var out Credentials
	err := c.call(ctx, c.baseURL, "accounts:signInWithCustomToken", map[string]any{
		"token":             token,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SendPasswordResetEmail asks the provider to email a reset link.
func (c *Client) SendPasswordResetEmail(ctx context.Context, email string) error {
	return c.call(ctx, c.baseURL, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	ExpiresIn    string `json:"expires_in"`
}

// Refresh exchanges a refresh token for fresh credentials.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Credentials, error) {
	var out refreshResponse
	err := c.call(ctx, c.tokenURL, "token", map[string]any{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Credentials{
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		LocalID:      out.UserID,
		ExpiresIn:    out.ExpiresIn,
	}, nil
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) call(ctx context.Context, base, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", method, err)
	}

	endpoint := base + "/" + method + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.GatewayError{Err: fmt.Errorf("%s: %w", method, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error.Message == "" {
			return &domain.GatewayError{Err: fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)}
		}
		return &domain.GatewayError{
			Code: ProviderCode(env.Error.Message),
			Err:  fmt.Errorf("%s: %s", method, env.Error.Message),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.GatewayError{Err: fmt.Errorf("%s: decode response: %w", method, err)}
	}
	return nil
}
