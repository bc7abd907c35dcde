package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastroagro/rastro/internal/client/api"
	"github.com/rastroagro/rastro/internal/client/storage/memory"
	"github.com/rastroagro/rastro/internal/client/token"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *token.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := token.NewStore(memory.New(), time.Hour)
	apiClient := api.New(server.URL, "key-123", tokens)
	return NewService(apiClient, tokens), tokens
}

func TestService_Login_StoresToken(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "tok1", TokenType: "bearer"})
	})

	ctx := context.Background()
	resp, err := svc.Login(ctx, "u@example.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "tok1", resp.AccessToken)

	got, ok := tokens.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok1", got)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestService_Login_InvalidInput(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the server for invalid input")
	})

	ctx := context.Background()
	_, err := svc.Login(ctx, "not-an-email", "p")
	require.Error(t, err)
	assert.False(t, tokens.IsAuthenticated(ctx))
}

func TestService_Login_RejectedCredentials(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "invalid credentials"}`))
	})

	ctx := context.Background()
	_, err := svc.Login(ctx, "u@example.com", "wrong")
	require.Error(t, err)
	assert.False(t, tokens.IsAuthenticated(ctx))
}

func TestService_Register_DoesNotStoreToken(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(pkgapi.Profile{ID: 1, Nome: "Maria", TipoPerfil: "user"})
	})

	ctx := context.Background()
	profile, err := svc.Register(ctx, pkgapi.RegisterRequest{
		Nome:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "segredo-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", profile.Nome)
	assert.False(t, tokens.IsAuthenticated(ctx), "registration must not create a session")
}

func TestService_LoginWithGoogle_StoresToken(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/google/verify-token", r.URL.Path)

		var req pkgapi.GoogleVerifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google-id-token", req.IDToken)

		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "tok-g", TokenType: "bearer"})
	})

	ctx := context.Background()
	resp, err := svc.LoginWithGoogle(ctx, "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "tok-g", resp.AccessToken)

	got, ok := tokens.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok-g", got)
}

func TestService_Logout_LocalOnly(t *testing.T) {
	var serverCalls int
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		serverCalls++
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "tok1"})
	})

	ctx := context.Background()
	_, err := svc.Login(ctx, "u@example.com", "p")
	require.NoError(t, err)
	require.Equal(t, 1, serverCalls)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))
	assert.Equal(t, 1, serverCalls, "logout must not call the server")
}

func TestService_SetToken(t *testing.T) {
	svc, tokens := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	ctx := context.Background()
	require.NoError(t, svc.SetToken(ctx, "external-tok"))

	got, ok := svc.Token(ctx)
	assert.True(t, ok)
	assert.Equal(t, "external-tok", got)
	assert.True(t, tokens.IsAuthenticated(ctx))
}
