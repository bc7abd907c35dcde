// Package chain implements the optional on-chain registration of
// batches. The database write has already happened by the time this
// layer runs; the mint is strictly best-effort and a chain outage never
// fails the batch creation.
package chain

import (
	"context"
	"log/slog"

	pkgapi "github.com/rastroagro/rastro/pkg/api"
)

// MintRequest describes one batch to be minted on chain.
type MintRequest struct {
	BatchID int64
	Codigo  string
}

// Wallet is the injected wallet provider. Implementations talk to
// whatever chain backend the deployment uses; this package only defines
// the boundary.
type Wallet interface {
	// MintBatch registers the batch on chain and returns the
	// transaction id.
	MintBatch(ctx context.Context, req MintRequest) (string, error)
}

// Result reports the outcome of a best-effort registration.
type Result struct {
	TxID    string
	OnChain bool
}

// Registrar runs the dual-write side flow.
type Registrar struct {
	wallet Wallet
}

// NewRegistrar creates a registrar over the given wallet. A nil wallet
// disables the on-chain flow entirely.
func NewRegistrar(wallet Wallet) *Registrar {
	return &Registrar{wallet: wallet}
}

// RegisterBatch attempts the on-chain mint for an already-persisted
// batch. Failures are logged and reported as OnChain=false; the caller
// treats the batch as created either way.
func (r *Registrar) RegisterBatch(ctx context.Context, batch *pkgapi.Batch) Result {
	if r.wallet == nil {
		return Result{}
	}

	txID, err := r.wallet.MintBatch(ctx, MintRequest{
		BatchID: batch.ID,
		Codigo:  batch.Codigo,
	})
	if err != nil {
		slog.Warn("on-chain registration failed, batch remains off-chain",
			"batch_id", batch.ID,
			"codigo", batch.Codigo,
			"error", err)
		return Result{}
	}

	slog.Info("batch registered on chain", "batch_id", batch.ID, "tx_id", txID)
	return Result{TxID: txID, OnChain: true}
}
