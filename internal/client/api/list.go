package api

import (
	"net/url"
	"strconv"
)

// ListOptions is the pagination window accepted by every list endpoint.
type ListOptions struct {
	Skip  int
	Limit int
}

// query renders the pagination window as query parameters. Zero values
// are omitted so the server applies its own defaults.
func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Skip > 0 {
		q.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// listPath joins a base path with query parameters.
func listPath(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
