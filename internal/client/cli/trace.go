package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/retry"
	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

func (c *Cli) newTraceCmd() *cobra.Command {
	var qr bool

	cmd := &cobra.Command{
		Use:   "trace <code>",
		Short: "Trace a batch by its printed code (no login required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			ctx := cmd.Context()

			trace, err := c.lookupTrace(ctx, code, qr)
			if err != nil {
				// Fall back to the last successful lookup, if any.
				if cached, cacheErr := c.cachedTrace(ctx, code); cacheErr == nil {
					fmt.Fprintf(c.out, "(offline: showing trace cached at %s)\n",
						cached.fetchedAt.Format(time.RFC3339))
					renderTracking(c.out, cached.trace)
					return nil
				}
				return err
			}

			c.storeTrace(ctx, code, trace)
			renderTracking(c.out, trace)
			return nil
		},
	}

	cmd.Flags().BoolVar(&qr, "qr", false, "Treat the argument as a QR payload instead of a tracking code")

	return cmd
}

// lookupTrace queries the public tracking endpoint with a bounded
// linear-backoff retry around transient failures.
func (c *Cli) lookupTrace(ctx context.Context, code string, qr bool) (*pkgapi.Tracking, error) {
	var trace *pkgapi.Tracking

	err := retry.Do(ctx, retry.DefaultAttempts, retry.DefaultBase, func(ctx context.Context) error {
		var err error
		if qr {
			trace, err = c.apiClient.TrackQR(ctx, code)
		} else {
			trace, err = c.apiClient.Track(ctx, code)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return trace, nil
}

type cachedTrace struct {
	trace     *pkgapi.Tracking
	fetchedAt time.Time
}

func (c *Cli) cachedTrace(ctx context.Context, code string) (*cachedTrace, error) {
	if c.cache == nil {
		return nil, fmt.Errorf("tracking cache disabled")
	}

	snap, err := c.cache.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	var trace pkgapi.Tracking
	if err := json.Unmarshal(snap.Payload, &trace); err != nil {
		return nil, fmt.Errorf("corrupt cached trace: %w", err)
	}

	return &cachedTrace{trace: &trace, fetchedAt: snap.FetchedAt}, nil
}

// storeTrace refreshes the offline cache. Best effort: a cache failure
// never fails the lookup.
func (c *Cli) storeTrace(ctx context.Context, code string, trace *pkgapi.Tracking) {
	if c.cache == nil {
		return
	}

	payload, err := json.Marshal(trace)
	if err != nil {
		return
	}
	_ = c.cache.Put(ctx, code, payload, time.Now())
}

// renderTracking prints the public trace timeline.
func renderTracking(w io.Writer, trace *pkgapi.Tracking) {
	fmt.Fprintf(w, "Code:     %s\n", trace.Codigo)
	fmt.Fprintf(w, "Product:  %s\n", trace.Produto)
	fmt.Fprintf(w, "Producer: %s\n", trace.Produtor)
	if trace.Origem != "" {
		fmt.Fprintf(w, "Origin:   %s\n", trace.Origem)
	}

	if len(trace.Eventos) == 0 {
		fmt.Fprintln(w, "No events recorded yet.")
		return
	}

	fmt.Fprintln(w, "Timeline:")
	for _, ev := range trace.Eventos {
		fmt.Fprintf(w, "  %s\t%s", ev.Data.Format("2006-01-02"), ev.Tipo)
		if ev.Local != "" {
			fmt.Fprintf(w, "\t@ %s", ev.Local)
		}
		if ev.Descricao != "" {
			fmt.Fprintf(w, "\t%s", ev.Descricao)
		}
		fmt.Fprintln(w)
	}
}
