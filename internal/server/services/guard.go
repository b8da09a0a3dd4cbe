// Package services contains the batcher's business logic: the user-facing
// ledger operations, the operator-driven settlement engine, and the
// governance/admin surface.
package services

import "sync"

// OpGuard serializes every state-mutating top-level operation. The batcher's
// correctness model is single in-flight execution: an operation runs to
// completion, including its external calls, before the next one starts. The
// guard is shared by all services so no two settlements, and no settlement
// and ledger mutation, ever interleave.
type OpGuard struct {
	mu sync.Mutex
}

func NewOpGuard() *OpGuard {
	return &OpGuard{}
}

// Enter acquires the guard and returns the release function. Callers must
// defer the release so failure paths unlock too.
func (g *OpGuard) Enter() func() {
	g.mu.Lock()
	return g.mu.Unlock
}
