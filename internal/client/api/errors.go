package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// APIError is a non-2xx response from the server. Transport-level
// failures (connection refused, timeouts) are ordinary wrapped errors
// and never produce an APIError; callers distinguish the two with
// errors.As.
type APIError struct {
	Status     int
	StatusText string
	Detail     pkgapi.ErrorDetail
}

// newAPIError parses the error body, falling back to the HTTP status
// text when the body is not the expected envelope.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:     status,
		StatusText: http.StatusText(status),
	}

	var envelope pkgapi.ErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail.String() != "" {
		apiErr.Detail = envelope.Detail
	} else {
		apiErr.Detail = pkgapi.ErrorDetail{Message: apiErr.StatusText}
	}

	return apiErr
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d %s): %s", e.Status, e.StatusText, e.Detail.String())
}

// IsStatus reports whether the error carries the given HTTP status.
func (e *APIError) IsStatus(status int) bool {
	return e.Status == status
}
