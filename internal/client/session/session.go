// Package session owns the single source of truth for "who is logged
// in" during the lifetime of the process. It starts in a loading state,
// resolves to authenticated or anonymous, and exposes derived flags that
// are recomputed from the profile on every read.
package session

import (
	"context"
	"log/slog"
	"sync"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// Authenticator is the slice of the auth facade the session needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

// ProfileFetcher fetches the authenticated user's profile.
type ProfileFetcher interface {
	Me(ctx context.Context) (*pkgapi.Profile, error)
}

// Session holds the current user profile and loading state. All
// mutations go through its methods; concurrent operations resolve as
// last-write-wins, which is acceptable for this single-user client.
type Session struct {
	mu       sync.Mutex
	auth     Authenticator
	profiles ProfileFetcher
	user     *pkgapi.Profile
	loading  bool
}

// New creates a session in the loading state. Call Init once at startup
// to resolve it.
func New(auth Authenticator, profiles ProfileFetcher) *Session {
	return &Session{
		auth:     auth,
		profiles: profiles,
		loading:  true,
	}
}

// Init resolves the startup state: if a valid token exists the profile
// is fetched; a failed fetch forces a local logout so the session never
// claims to be authenticated on the strength of an unverifiable token
// (fail-closed). Startup failures are logged, not propagated.
func (s *Session) Init(ctx context.Context) {
	defer s.setLoading(false)

	if !s.auth.IsAuthenticated(ctx) {
		return
	}

	profile, err := s.profiles.Me(ctx)
	if err != nil {
		slog.Warn("startup profile load failed, clearing session", "error", err)
		if logoutErr := s.auth.Logout(ctx); logoutErr != nil {
			slog.Warn("failed to clear session", "error", logoutErr)
		}
		return
	}

	s.setUser(profile)
}

// Login runs the credential exchange and then fetches the profile. The
// exchange persists the token before the profile fetch begins; if the
// fetch then fails the error is returned and the derived flags stay
// anonymous, even though the token remains stored. The next startup
// retries the profile load and fails closed if it still cannot succeed.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if _, err := s.auth.Login(ctx, email, password); err != nil {
		return err
	}

	profile, err := s.profiles.Me(ctx)
	if err != nil {
		return err
	}

	s.setUser(profile)
	s.setLoading(false)
	return nil
}

// Logout clears the token and the loaded profile synchronously. No
// server round-trip is made.
func (s *Session) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		slog.Warn("failed to remove stored token", "error", err)
	}
	s.setUser(nil)
}

// UpdateUser replaces the loaded profile after a successful server-side
// edit. The token store is not touched.
func (s *Session) UpdateUser(profile *pkgapi.Profile) {
	s.setUser(profile)
}

// RefreshUser re-fetches the profile. A failure is returned to the
// caller without forcing a logout: the loaded profile may still be
// valid and the failure transient, unlike the trust-establishing load
// at startup.
func (s *Session) RefreshUser(ctx context.Context) error {
	profile, err := s.profiles.Me(ctx)
	if err != nil {
		return err
	}

	s.setUser(profile)
	return nil
}

// User returns the loaded profile, or nil when anonymous.
func (s *Session) User() *pkgapi.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// IsAuthenticated reports whether a profile is loaded.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsAdmin reports whether the loaded profile has the admin role.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsAdmin()
}

// IsLoading reports whether the startup resolution is still in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) setUser(profile *pkgapi.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = profile
}

func (s *Session) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
