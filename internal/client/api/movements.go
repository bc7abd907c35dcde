package api

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// ListMovements lists movements within the pagination window, optionally
// narrowed by the filter.
func (c *Client) ListMovements(ctx context.Context, opts ListOptions, filter pkgapi.MovementFilter) ([]pkgapi.Movement, error) {
	q := opts.query()
	if filter.LoteID > 0 {
		q.Set("lote_id", strconv.FormatInt(filter.LoteID, 10))
	}
	if filter.Tipo != "" {
		q.Set("tipo", filter.Tipo)
	}

	var resp []pkgapi.Movement
	if err := c.Get(ctx, listPath("/movements", q), &resp); err != nil {
		return nil, fmt.Errorf("list movements failed: %w", err)
	}
	return resp, nil
}

// GetMovement fetches one movement by id.
func (c *Client) GetMovement(ctx context.Context, id int64) (*pkgapi.Movement, error) {
	var resp pkgapi.Movement
	if err := c.Get(ctx, "/movements/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, fmt.Errorf("get movement failed: %w", err)
	}
	return &resp, nil
}

// CreateMovement records a new movement for a batch.
func (c *Client) CreateMovement(ctx context.Context, req pkgapi.MovementRequest) (*pkgapi.Movement, error) {
	var resp pkgapi.Movement
	if err := c.Post(ctx, "/movements", req, &resp); err != nil {
		return nil, fmt.Errorf("create movement failed: %w", err)
	}
	return &resp, nil
}

// UpdateMovement updates an existing movement.
func (c *Client) UpdateMovement(ctx context.Context, id int64, req pkgapi.MovementRequest) (*pkgapi.Movement, error) {
	var resp pkgapi.Movement
	if err := c.Put(ctx, "/movements/"+strconv.FormatInt(id, 10), req, &resp); err != nil {
		return nil, fmt.Errorf("update movement failed: %w", err)
	}
	return &resp, nil
}

// DeleteMovement removes a movement.
func (c *Client) DeleteMovement(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, "/movements/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete movement failed: %w", err)
	}
	return nil
}
