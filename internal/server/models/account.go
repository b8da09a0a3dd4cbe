// Package models holds the persisted domain records of the batcher:
// per-user ledger accounts, the vault binding, governance parameters, and
// settlement audit records.
package models

import (
	"time"

	"cosmossdk.io/math"
)

// Account is the per-user ledger triplet.
//
// Invariant: PendingDeposit and PendingWithdraw are never both positive. A
// user must fully settle one direction before entering the other.
// SettledShares is independent of the other two.
type Account struct {
	Address         string
	PendingDeposit  math.Int // accepted-asset units awaiting deposit settlement
	PendingWithdraw math.Int // vault shares awaiting withdrawal settlement
	SettledShares   math.Int // vault shares settled and claimable
	UpdatedAt       time.Time
}

// NewAccount returns a zeroed ledger account for the given address. Accounts
// are created implicitly on first use and never deleted.
func NewAccount(address string) *Account {
	return &Account{
		Address:         address,
		PendingDeposit:  math.ZeroInt(),
		PendingWithdraw: math.ZeroInt(),
		SettledShares:   math.ZeroInt(),
	}
}
