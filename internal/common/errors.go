// Package common defines shared constants and sentinel errors used across
// the batcher server and client layers. Callers match these with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Authorization gate errors.
	ErrInvalidAuthorization = errors.New("invalid authorization")
	ErrConflictingDirection = errors.New("conflicting direction")

	// Ledger errors.
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Settlement errors.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrSettlementMismatch means the hauler reported an amount inconsistent
	// with the balance change we measured. The whole batch must abort with no
	// partial state change.
	ErrSettlementMismatch = errors.New("settlement mismatch")

	// Role / parameter errors.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
