package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func TestTokenClaims_JWT(t *testing.T) {
	exp := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "maria@example.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	lines := tokenClaims(signed)
	require.Len(t, lines, 2)
	assert.Equal(t, "Subject: maria@example.com", lines[0])
	assert.Contains(t, lines[1], "Token expires:")
}

func TestTokenClaims_OpaqueToken(t *testing.T) {
	assert.Empty(t, tokenClaims("not-a-jwt-at-all"))
}

func TestRenderTracking(t *testing.T) {
	trace := &pkgapi.Tracking{
		Codigo:   "ABC-123",
		Produto:  "Café",
		Produtor: "Sítio Boa Vista",
		Origem:   "Minas Gerais",
		Eventos: []pkgapi.TrackingEvent{
			{Tipo: "colheita", Local: "Talhão 3", Data: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
			{Tipo: "envio", Local: "CD Campinas", Data: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)},
		},
	}

	var buf bytes.Buffer
	renderTracking(&buf, trace)

	out := buf.String()
	assert.Contains(t, out, "Code:     ABC-123")
	assert.Contains(t, out, "Product:  Café")
	assert.Contains(t, out, "colheita")
	assert.Contains(t, out, "2025-05-12")
}

func TestRenderTracking_NoEvents(t *testing.T) {
	var buf bytes.Buffer
	renderTracking(&buf, &pkgapi.Tracking{Codigo: "ABC-123", Produto: "Café", Produtor: "P"})
	assert.Contains(t, buf.String(), "No events recorded yet.")
}

func TestRoot_CommandTree(t *testing.T) {
	c := New(nil, nil, nil, nil)
	root := c.Root()

	want := []string{"register", "login", "logout", "status", "whoami", "products", "batches", "movements", "trace"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "command %q should exist", name)
		assert.Equal(t, name, cmd.Name())
	}
}
