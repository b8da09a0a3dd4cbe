package models

// Params holds the operator-adjustable and governance-controlled settings.
//
// The operator address is deliberately absent: it is resolved live from the
// bound vault on every privileged call, so rotating the vault operator
// instantly rotates who may drive the batcher.
type Params struct {
	// SlippageBps is the conversion slippage tolerance in basis points,
	// bounded to [0, common.MaxBasisPoints].
	SlippageBps int32

	// Governance controls the authority key, governance handover, and
	// emergency sweeps.
	Governance string

	// PendingGovernance is the two-phase handover target. The transfer takes
	// effect only when this address calls AcceptGovernance.
	PendingGovernance string

	// AuthorityKey is the hex-encoded Ed25519 public key whose signed tokens
	// authorize deposits.
	AuthorityKey string
}
