package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// mockAuth implements Authenticator for testing
type mockAuth struct {
	loginErr      error
	logoutErr     error
	authenticated bool
	loginCalls    int
	logoutCalls   int
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	m.authenticated = true
	return &pkgapi.TokenResponse{AccessToken: "tok1", TokenType: "bearer"}, nil
}

func (m *mockAuth) Logout(ctx context.Context) error {
	m.logoutCalls++
	if m.logoutErr != nil {
		return m.logoutErr
	}
	m.authenticated = false
	return nil
}

func (m *mockAuth) IsAuthenticated(ctx context.Context) bool {
	return m.authenticated
}

// mockProfiles implements ProfileFetcher for testing
type mockProfiles struct {
	profile *pkgapi.Profile
	err     error
	calls   int
}

func (m *mockProfiles) Me(ctx context.Context) (*pkgapi.Profile, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	cp := *m.profile
	return &cp, nil
}

func TestSession_InitialState(t *testing.T) {
	s := New(&mockAuth{}, &mockProfiles{})

	assert.True(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Nil(t, s.User())
}

func TestSession_Init_Anonymous(t *testing.T) {
	auth := &mockAuth{authenticated: false}
	profiles := &mockProfiles{}
	s := New(auth, profiles)

	s.Init(context.Background())

	assert.False(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, profiles.calls, "no profile fetch without a token")
}

func TestSession_Init_Authenticated(t *testing.T) {
	auth := &mockAuth{authenticated: true}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)

	s.Init(context.Background())

	assert.False(t, s.IsLoading())
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "U", s.User().Nome)
}

func TestSession_Init_FailClosed(t *testing.T) {
	auth := &mockAuth{authenticated: true}
	profiles := &mockProfiles{err: errors.New("boom")}
	s := New(auth, profiles)

	s.Init(context.Background())

	assert.False(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, 1, auth.logoutCalls, "an unverifiable token must be cleared")
}

func TestSession_Login(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)

	err := s.Login(context.Background(), "u@example.com", "p")
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "U", s.User().Nome)
	assert.False(t, s.IsLoading())
}

func TestSession_Login_AdminDetection(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "A", TipoPerfil: "admin"}}
	s := New(auth, profiles)

	require.NoError(t, s.Login(context.Background(), "a@example.com", "p"))
	assert.True(t, s.IsAdmin())
}

func TestSession_Login_ExchangeFails(t *testing.T) {
	auth := &mockAuth{loginErr: errors.New("bad credentials")}
	profiles := &mockProfiles{}
	s := New(auth, profiles)

	err := s.Login(context.Background(), "u@example.com", "wrong")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Zero(t, profiles.calls, "profile fetch must not start before the exchange succeeds")
}

func TestSession_Login_ProfileFetchFails(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{err: errors.New("boom")}
	s := New(auth, profiles)

	err := s.Login(context.Background(), "u@example.com", "p")
	require.Error(t, err)

	// The derived flags stay anonymous even though the exchange already
	// persisted a token.
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.True(t, auth.authenticated, "the token persists; only the visible state stays anonymous")
}

func TestSession_Logout(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)
	require.NoError(t, s.Login(context.Background(), "u@example.com", "p"))

	s.Logout(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, 1, auth.logoutCalls)
	assert.False(t, auth.authenticated)
}

func TestSession_UpdateUser(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)
	require.NoError(t, s.Login(context.Background(), "u@example.com", "p"))

	s.UpdateUser(&pkgapi.Profile{ID: 1, Nome: "Renamed", TipoPerfil: "user"})
	assert.Equal(t, "Renamed", s.User().Nome)
	assert.Equal(t, 1, auth.loginCalls)
}

func TestSession_RefreshUser(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)
	require.NoError(t, s.Login(context.Background(), "u@example.com", "p"))

	profiles.profile = &pkgapi.Profile{ID: 1, Nome: "Fresh", TipoPerfil: "user"}
	require.NoError(t, s.RefreshUser(context.Background()))
	assert.Equal(t, "Fresh", s.User().Nome)
}

func TestSession_RefreshUser_FailureKeepsProfile(t *testing.T) {
	auth := &mockAuth{}
	profiles := &mockProfiles{profile: &pkgapi.Profile{ID: 1, Nome: "U", TipoPerfil: "user"}}
	s := New(auth, profiles)
	require.NoError(t, s.Login(context.Background(), "u@example.com", "p"))

	profiles.err = errors.New("transient")
	err := s.RefreshUser(context.Background())
	require.Error(t, err)

	// Unlike startup, a refresh failure does not force a logout
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "U", s.User().Nome)
	assert.Zero(t, auth.logoutCalls)
}

func TestContext_RoundTrip(t *testing.T) {
	s := New(&mockAuth{}, &mockProfiles{})
	ctx := NewContext(context.Background(), s)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, s, got)
	assert.Same(t, s, MustFromContext(ctx))
}

func TestContext_MustFromContext_PanicsWithoutProvider(t *testing.T) {
	assert.PanicsWithValue(t,
		"session: no Session in context; wrap the root context with session.NewContext",
		func() { MustFromContext(context.Background()) })
}
