// Package cli wires the client services into cobra commands.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/api"
	"github.com/rastroagro/rastro/internal/client/auth"
	sqlitecache "github.com/rastroagro/rastro/internal/client/cache/sqlite"
	"github.com/rastroagro/rastro/internal/client/chain"
)

// Cli holds the wired services the commands run against. The session is
// not held here: commands reach it through the command context, which
// the composition root prepares with session.NewContext.
type Cli struct {
	apiClient *api.Client
	auth      *auth.Service
	registrar *chain.Registrar
	cache     *sqlitecache.Cache
	out       io.Writer
}

// New creates the command layer. cache may be nil when the offline
// tracking cache is unavailable.
func New(apiClient *api.Client, authService *auth.Service, registrar *chain.Registrar, cache *sqlitecache.Cache) *Cli {
	return &Cli{
		apiClient: apiClient,
		auth:      authService,
		registrar: registrar,
		cache:     cache,
		out:       os.Stdout,
	}
}

// Root assembles the command tree.
func (c *Cli) Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rastro",
		Short: "Client for the agricultural traceability platform",
		Long: `Rastro is the command-line client for the agricultural
traceability platform: producers manage products, batches and
movements, and anyone can trace a batch by its printed code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		c.newRegisterCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newStatusCmd(),
		c.newWhoamiCmd(),
		c.newProductsCmd(),
		c.newBatchesCmd(),
		c.newMovementsCmd(),
		c.newTraceCmd(),
	)

	return rootCmd
}
