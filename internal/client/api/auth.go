package api

import (
	"context"
	"fmt"
	"net/url"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// Register creates a new producer account. No token is required and none
// is stored; the caller logs in separately.
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.Profile, error) {
	var resp pkgapi.Profile
	err := c.do(ctx, request{method: "POST", path: "/auth/register", body: req}, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token. The endpoint follows
// the OAuth2 password flow and expects a form-encoded body.
func (c *Client) Login(ctx context.Context, creds pkgapi.Credentials) (*pkgapi.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var resp pkgapi.TokenResponse
	if err := c.PostForm(ctx, "/auth/login", form, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// VerifyGoogleToken exchanges an externally obtained Google ID token for
// a platform bearer token.
func (c *Client) VerifyGoogleToken(ctx context.Context, idToken string) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	req := pkgapi.GoogleVerifyRequest{IDToken: idToken}
	if err := c.Post(ctx, "/auth/google/verify-token", req, &resp); err != nil {
		return nil, fmt.Errorf("google token verification failed: %w", err)
	}
	return &resp, nil
}
