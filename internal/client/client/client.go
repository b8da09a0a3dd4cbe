// Package client wraps the batcher gRPC API for the CLI.
package client

import (
	"context"

	pb "github.com/tidemill/haulbatch/internal/proto"
)

// Client is the batcher API surface the CLI works against.
type Client interface {
	Close() error

	RequestDeposit(ctx context.Context, requester, amount, authorization string) (*pb.Account, error)
	RequestDepositViaConversion(ctx context.Context, requester, amountIn, authorization string) (string, *pb.Account, error)
	RequestWithdraw(ctx context.Context, requester, amount, transferInShares string) (*pb.Account, error)
	Claim(ctx context.Context, requester, recipient, amount string) (*pb.Account, error)

	SettleDeposits(ctx context.Context, users []string) (*pb.Settlement, error)
	SettleWithdrawals(ctx context.Context, users []string) (*pb.Settlement, error)

	SetCapacity(ctx context.Context, max string) error
	SetSlippageTolerance(ctx context.Context, bps int32) error
	SetAuthority(ctx context.Context, authorityKey string) error
	ProposeGovernance(ctx context.Context, candidate string) error
	AcceptGovernance(ctx context.Context) error
	EmergencySweep(ctx context.Context, asset string) (string, error)

	GetAccount(ctx context.Context, address string) (*pb.Account, error)
	GetParams(ctx context.Context) (*pb.Params, *pb.Binding, error)
	GetSettlement(ctx context.Context, id string) (*pb.Settlement, error)
}
