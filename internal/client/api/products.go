package api

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// ListProducts lists products within the pagination window, optionally
// narrowed by the filter.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions, filter pkgapi.ProductFilter) ([]pkgapi.Product, error) {
	q := opts.query()
	if filter.Categoria != "" {
		q.Set("categoria", filter.Categoria)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var resp []pkgapi.Product
	if err := c.Get(ctx, listPath("/products", q), &resp); err != nil {
		return nil, fmt.Errorf("list products failed: %w", err)
	}
	return resp, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*pkgapi.Product, error) {
	var resp pkgapi.Product
	if err := c.Get(ctx, "/products/"+strconv.FormatInt(id, 10), &resp); err != nil {
		return nil, fmt.Errorf("get product failed: %w", err)
	}
	return &resp, nil
}

// CreateProduct registers a new product.
func (c *Client) CreateProduct(ctx context.Context, req pkgapi.ProductRequest) (*pkgapi.Product, error) {
	var resp pkgapi.Product
	if err := c.Post(ctx, "/products", req, &resp); err != nil {
		return nil, fmt.Errorf("create product failed: %w", err)
	}
	return &resp, nil
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, req pkgapi.ProductRequest) (*pkgapi.Product, error) {
	var resp pkgapi.Product
	if err := c.Put(ctx, "/products/"+strconv.FormatInt(id, 10), req, &resp); err != nil {
		return nil, fmt.Errorf("update product failed: %w", err)
	}
	return &resp, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, "/products/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("delete product failed: %w", err)
	}
	return nil
}
