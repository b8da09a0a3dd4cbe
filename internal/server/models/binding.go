package models

import "cosmossdk.io/math"

// Binding ties the batcher to one hauler vault and its accepted asset, and
// carries the aggregate deposit-capacity counters.
//
// VaultID doubles as the share asset identifier: the vault issues its own
// shares as a transferable asset under the same ID.
//
// Invariant: CurrentPending <= MaxPending after every accepted deposit.
type Binding struct {
	VaultID        string
	AcceptedAsset  string
	MaxPending     math.Int // aggregate pending-deposit cap
	CurrentPending math.Int // aggregate outstanding deposited amount
}
