// Package hauler defines the batcher's view of the external hauler node: the
// pooled-fund vault, the asset transfer primitives, and the conversion pool.
// The batcher only ever calls these interfaces; the node's own accounting is
// out of scope.
package hauler

import (
	"context"

	"cosmossdk.io/math"
)

// Vault is the pooled-fund vault the batcher settles against. Shares minted
// by the vault circulate as a transferable asset under the vault's own ID.
type Vault interface {
	// Deposit moves amount of the accepted asset from the beneficiary's
	// balance into the vault and returns the shares the vault reports minted.
	Deposit(ctx context.Context, amount math.Int, beneficiary string) (math.Int, error)

	// Withdraw redeems shareAmount of vault shares held by the beneficiary
	// and returns the underlying amount the vault reports returned.
	Withdraw(ctx context.Context, shareAmount math.Int, beneficiary string) (math.Int, error)

	// AcceptedAsset returns the asset ID the vault takes on deposit.
	AcceptedAsset(ctx context.Context) (string, error)

	// Operator returns the address currently allowed to drive settlement.
	// The batcher never caches this.
	Operator(ctx context.Context) (string, error)
}

// Token exposes standard transfer semantics for any asset on the node,
// including vault shares.
type Token interface {
	Transfer(ctx context.Context, asset, to string, amount math.Int) error
	TransferFrom(ctx context.Context, asset, from, to string, amount math.Int) error
	BalanceOf(ctx context.Context, asset, holder string) (math.Int, error)
	Approve(ctx context.Context, asset, spender string, amount math.Int) error
}

// Pool converts one asset into another through an external liquidity pool.
type Pool interface {
	// EstimateWithdrawOneAsset quotes the output of withdrawing amount of
	// pool liquidity into the single asset at assetIndex. View call, no
	// side effects.
	EstimateWithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32) (math.Int, error)

	// WithdrawOneAsset performs the conversion. The pool fails the call if it
	// cannot deliver at least minOut; that failure is propagated as-is.
	WithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32, minOut math.Int) (math.Int, error)
}

// Node bundles every collaborator surface the batcher needs.
type Node interface {
	Vault
	Token
	Pool
}
