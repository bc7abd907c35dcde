package api

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// ListBatches lists batches within the pagination window, optionally
// narrowed by the filter.
func (c *Client) ListBatches(ctx context.Context, opts ListOptions, filter pkgapi.BatchFilter) ([]pkgapi.Batch, error) {
	q := opts.query()
	if filter.ProdutoID > 0 {
		q.Set("produto_id", strconv.FormatInt(filter.ProdutoID, 10))
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}

	var resp []pkgapi.Batch
	if err := c.Get(ctx, listPath("/batches", q), &resp); err != nil {
		return nil, fmt.Errorf("list batches failed: %w", err)
	}
	return resp, nil
}

// GetBatch fetches one batch by id.
func (c *Client) GetBatch(ctx context.Context, id int64) (*pkgapi.Batch, error) {
	var resp pkgapi.Batch
	if err := c.Get(ctx, "/batches/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, fmt.Errorf("get batch failed: %w", err)
	}
	return &resp, nil
}

// CreateBatch registers a new batch; the server assigns the tracking
// code and QR payload.
func (c *Client) CreateBatch(ctx context.Context, req pkgapi.BatchRequest) (*pkgapi.Batch, error) {
	var resp pkgapi.Batch
	if err := c.Post(ctx, "/batches", req, &resp); err != nil {
		return nil, fmt.Errorf("create batch failed: %w", err)
	}
	return &resp, nil
}

// UpdateBatch updates an existing batch.
func (c *Client) UpdateBatch(ctx context.Context, id int64, req pkgapi.BatchRequest) (*pkgapi.Batch, error) {
	var resp pkgapi.Batch
	if err := c.Put(ctx, "/batches/"+strconv.FormatInt(id, 10), req, &resp); err != nil {
		return nil, fmt.Errorf("update batch failed: %w", err)
	}
	return &resp, nil
}

// DeleteBatch removes a batch.
func (c *Client) DeleteBatch(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, "/batches/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete batch failed: %w", err)
	}
	return nil
}

// ListBatchMovements lists the movements recorded for one batch.
func (c *Client) ListBatchMovements(ctx context.Context, batchID int64) ([]pkgapi.Movement, error) {
	var resp []pkgapi.Movement
	path := "/batches/" + strconv.FormatInt(batchID, 10) + "/movements"
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list batch movements failed: %w", err)
	}
	return resp, nil
}
