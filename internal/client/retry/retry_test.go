package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rastroagro/rastro/internal/client/api"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func apiError(status int) error {
	return &api.APIError{
		Status:     status,
		StatusText: http.StatusText(status),
		Detail:     pkgapi.ErrorDetail{Message: "boom"},
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(errors.New("connection refused")))
	assert.True(t, Retryable(apiError(http.StatusBadGateway)))
	assert.False(t, Retryable(apiError(http.StatusNotFound)))
	assert.False(t, Retryable(apiError(http.StatusUnauthorized)))
}

func TestDo_StopsAfterBudget(t *testing.T) {
	var calls int
	err := Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return errors.New("network down")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	var calls int
	err := Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return apiError(http.StatusNotFound)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx failures are final")

	var apiErr *api.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestDo_SucceedsMidway(t *testing.T) {
	var calls int
	err := Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return apiError(http.StatusServiceUnavailable)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLinear_GrowsByBase(t *testing.T) {
	b := Linear(100 * time.Millisecond)

	first, stop := b.Next()
	assert.False(t, stop)
	assert.Equal(t, 100*time.Millisecond, first)

	second, stop := b.Next()
	assert.False(t, stop)
	assert.Equal(t, 200*time.Millisecond, second)
}
