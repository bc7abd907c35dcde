// Package auth provides the authentication facade: thin, stateless
// operations bridging the API client and the token store for the
// session lifecycle.
package auth

import (
	"context"
	"fmt"

	"github.com/rastroagro/rastro/internal/client/api"
	"github.com/rastroagro/rastro/internal/client/token"
	"github.com/rastroagro/rastro/internal/validation"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// Service bridges the API client and the token store.
type Service struct {
	apiClient *api.Client
	tokens    *token.Store
}

// NewService creates a new authentication facade.
func NewService(apiClient *api.Client, tokens *token.Store) *Service {
	return &Service{
		apiClient: apiClient,
		tokens:    tokens,
	}
}

// Register creates a new producer account. The token store is not
// touched; the caller logs in afterwards.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.Profile, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	profile, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return profile, nil
}

// Login exchanges credentials for a bearer token and stores it. The
// token is persisted as soon as the exchange succeeds, before any
// profile fetch the caller may do next.
func (s *Service) Login(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	creds := pkgapi.Credentials{Username: email, Password: password}
	if err := validation.Struct(creds); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.tokens.Set(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return resp, nil
}

// LoginWithGoogle exchanges an externally obtained Google ID token for a
// platform bearer token and stores it.
func (s *Service) LoginWithGoogle(ctx context.Context, idToken string) (*pkgapi.TokenResponse, error) {
	if err := validation.Struct(pkgapi.GoogleVerifyRequest{IDToken: idToken}); err != nil {
		return nil, fmt.Errorf("invalid google login: %w", err)
	}

	resp, err := s.apiClient.VerifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("google login failed: %w", err)
	}

	if err := s.tokens.Set(ctx, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return resp, nil
}

// Logout removes the stored token. Purely local: the API has no logout
// endpoint and the bearer token simply stops being sent.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.tokens.Remove(ctx); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-expired token is stored.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.tokens.IsAuthenticated(ctx)
}

// Token returns the stored token, if any.
func (s *Service) Token(ctx context.Context) (string, bool) {
	return s.tokens.Get(ctx)
}

// SetToken stores a token obtained out of band.
func (s *Service) SetToken(ctx context.Context, tok string) error {
	return s.tokens.Set(ctx, tok)
}
