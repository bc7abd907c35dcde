package api

import (
	"context"
	"fmt"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// Me fetches the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*pkgapi.Profile, error) {
	var resp pkgapi.Profile
	if err := c.Get(ctx, "/user/me", &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateMe updates the authenticated user's profile and returns the
// server's view of it.
func (c *Client) UpdateMe(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.Profile, error) {
	var resp pkgapi.Profile
	if err := c.Put(ctx, "/user/me", req, &resp); err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}
	return &resp, nil
}
