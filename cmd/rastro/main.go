package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rastroagro/rastro/internal/client/api"
	"github.com/rastroagro/rastro/internal/client/auth"
	sqlitecache "github.com/rastroagro/rastro/internal/client/cache/sqlite"
	"github.com/rastroagro/rastro/internal/client/chain"
	"github.com/rastroagro/rastro/internal/client/cli"
	"github.com/rastroagro/rastro/internal/client/config"
	"github.com/rastroagro/rastro/internal/client/session"
	"github.com/rastroagro/rastro/internal/client/storage"
	"github.com/rastroagro/rastro/internal/client/storage/boltdb"
	"github.com/rastroagro/rastro/internal/client/storage/sealed"
	"github.com/rastroagro/rastro/internal/client/token"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	clientID, err := boltStorage.ClientID(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve client id: %w", err)
	}

	tokenStorage, err := selectTokenStorage(boltStorage, cfg, clientID)
	if err != nil {
		return err
	}
	tokens := token.NewStore(tokenStorage, cfg.SessionTTL)

	apiClient := api.New(cfg.APIURL, cfg.APIKey, tokens)
	apiClient.SetClientID(clientID)

	authService := auth.NewService(apiClient, tokens)
	sess := session.New(authService, apiClient)

	// The HTTP client only signals expiry; translating that into
	// user-visible state is this shell's job.
	apiClient.OnSessionExpired(func() {
		sess.UpdateUser(nil)
		fmt.Fprintln(os.Stderr, "Session expired. Run 'rastro login' to sign in again.")
	})

	sess.Init(ctx)

	// The offline tracking cache is a convenience; run without it if it
	// cannot be opened.
	var cache *sqlitecache.Cache
	if c, err := sqlitecache.New(ctx, cfg.CacheDB); err != nil {
		slog.Warn("tracking cache unavailable", "error", err)
	} else {
		cache = c
		defer func() {
			if err := cache.Close(); err != nil {
				slog.Error("failed to close tracking cache", "error", err)
			}
		}()
	}

	// No wallet provider ships with the CLI; deployments that mint
	// on chain inject one here.
	registrar := chain.NewRegistrar(nil)

	root := cli.New(apiClient, authService, registrar, cache).Root()
	root.AddCommand(versionCmd())

	return root.ExecuteContext(session.NewContext(ctx, sess))
}

// selectTokenStorage wraps the bolt storage with passphrase sealing when
// one is configured.
func selectTokenStorage(boltStorage *boltdb.Storage, cfg *config.Config, clientID string) (storage.TokenStorage, error) {
	if cfg.Passphrase == "" {
		return boltStorage, nil
	}

	key, err := sealed.DeriveKey(cfg.Passphrase, []byte(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to derive sealing key: %w", err)
	}

	sealedStorage, err := sealed.New(boltStorage, key)
	if err != nil {
		return nil, fmt.Errorf("failed to enable sealed storage: %w", err)
	}

	return sealedStorage, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rastro %s\n", Version)
			fmt.Printf("Build Date: %s\n", BuildDate)
			fmt.Printf("Git Commit: %s\n", GitCommit)
		},
	}
}
