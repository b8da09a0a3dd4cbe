// Package common contains shared constants and sentinel errors used across
// batcher components.
package common

// MaxBasisPoints is the denominator for all basis-point parameters
// (e.g. the conversion slippage tolerance).
const MaxBasisPoints = int32(10_000)

// CallerHeaderName is the gRPC metadata key carrying the caller address on
// outbound requests from the CLI.
const CallerHeaderName = "caller_address"
