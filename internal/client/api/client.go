// Package api implements the HTTP client for the traceability platform.
// It is the single point of outbound traffic: every request carries the
// static API key, authenticated requests carry the bearer token, and all
// responses flow through one uniform success/failure path.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rastroagro/rastro/internal/client/token"
)

const (
	headerAPIKey   = "X-API-Key"
	headerClientID = "X-Client-Id"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Client is the HTTP client for the platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	clientID   string
	tokens     *token.Store
	expired    func()
}

// New creates a new API client. tokens supplies the bearer token for
// authenticated requests and is cleared by the client on a 401 response.
func New(baseURL, apiKey string, tokens *token.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetClientID sets the stable per-install identifier sent with every
// request.
func (c *Client) SetClientID(id string) {
	c.clientID = id
}

// OnSessionExpired registers the handler invoked when an authenticated
// request comes back 401. The client only clears the token store; what
// "go back to login" means is up to the subscriber, which keeps this
// layer free of any navigation mechanism. Set once at wiring time.
func (c *Client) OnSessionExpired(fn func()) {
	c.expired = fn
}

// request describes one outbound call. auth defaults to true for every
// verb except PostForm, which exists for the credential exchange itself.
type request struct {
	method string
	path   string
	body   any
	form   url.Values
	auth   bool
}

// Get performs an authenticated GET.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, auth: true}, result)
}

// Post performs an authenticated JSON POST.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body, auth: true}, result)
}

// Put performs an authenticated JSON PUT.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPut, path: path, body: body, auth: true}, result)
}

// Patch performs an authenticated JSON PATCH.
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPatch, path: path, body: body, auth: true}, result)
}

// Delete performs an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string, result any) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path, auth: true}, result)
}

// PostForm performs an unauthenticated form-encoded POST. Used for the
// credential exchange, which cannot itself require a token.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, result any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, form: form, auth: false}, result)
}

// getPublic performs an unauthenticated GET (public tracking endpoints).
func (c *Client) getPublic(ctx context.Context, path string, result any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path}, result)
}

// do executes one request and applies the uniform response contract:
// success refreshes the sliding session, 204 yields an empty result,
// failure parses the error body and, on 401, clears the token store.
func (c *Client) do(ctx context.Context, req request, result any) error {
	var bodyReader io.Reader
	contentType := contentTypeJSON

	switch {
	case req.form != nil:
		bodyReader = strings.NewReader(req.form.Encode())
		contentType = contentTypeForm
	case req.body != nil:
		jsonData, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		httpReq.Header.Set(headerAPIKey, c.apiKey)
	}
	if c.clientID != "" {
		httpReq.Header.Set(headerClientID, c.clientID)
	}
	if req.auth {
		if tok, ok := c.tokens.Get(ctx); ok {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleFailure(ctx, req, resp.StatusCode, respBody)
	}

	// Sliding session: every successful call extends a currently valid
	// token's window.
	if c.tokens.IsAuthenticated(ctx) {
		if err := c.tokens.RefreshExpiry(ctx); err != nil {
			return fmt.Errorf("failed to refresh session expiry: %w", err)
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 || result == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) handleFailure(ctx context.Context, req request, status int, respBody []byte) error {
	apiErr := newAPIError(status, respBody)

	if status == http.StatusUnauthorized {
		// The stored token is no longer trusted by the server; drop it
		// so no further request sends a dead credential.
		_ = c.tokens.Remove(ctx)

		// Unauthenticated requests are the login exchange itself; a 401
		// there is a bad credential, not an expired session.
		if req.auth && c.expired != nil {
			c.expired()
		}
	}

	return apiErr
}
