package api

import (
	"context"
	"fmt"
	"net/url"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// Track fetches the public trace of a batch by its printed code. No
// authentication is required or sent.
func (c *Client) Track(ctx context.Context, code string) (*pkgapi.Tracking, error) {
	var resp pkgapi.Tracking
	if err := c.getPublic(ctx, "/tracking/"+url.PathEscape(code), &resp); err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}
	return &resp, nil
}

// TrackQR fetches the public trace of a batch by its QR payload.
func (c *Client) TrackQR(ctx context.Context, qrcode string) (*pkgapi.Tracking, error) {
	var resp pkgapi.Tracking
	if err := c.getPublic(ctx, "/tracking/qr/"+url.PathEscape(qrcode), &resp); err != nil {
		return nil, fmt.Errorf("qr tracking request failed: %w", err)
	}
	return &resp, nil
}
