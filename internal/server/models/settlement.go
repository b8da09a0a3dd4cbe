package models

import (
	"time"

	"cosmossdk.io/math"
)

// SettlementDirection distinguishes deposit and withdrawal batches.
type SettlementDirection string

const (
	SettleDeposits    SettlementDirection = "deposits"
	SettleWithdrawals SettlementDirection = "withdrawals"
)

// Settlement is the audit record of one settled batch. The batch itself is
// ephemeral; this row is what remains for inspection after it commits.
//
// Residue = Measured - sum of allocated user amounts. Floor division keeps it
// nonnegative and below the number of allocated users; it stays with the
// batcher and is never distributed.
type Settlement struct {
	ID        string
	Direction SettlementDirection
	Users     []string // deduplicated, in submission order
	Requested math.Int // aggregate amount sent to the vault call
	Reported  math.Int // amount the vault claims it returned
	Measured  math.Int // balance change we measured ourselves
	Residue   math.Int
	CreatedAt time.Time
}
