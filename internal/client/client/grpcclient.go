package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/tidemill/haulbatch/internal/common"
	pb "github.com/tidemill/haulbatch/internal/proto"
)

// GRPCClient implements Client over the batcher gRPC endpoint. Every request
// carries the configured caller address as metadata; the server resolves
// operator and governance rights from it.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.BatcherServiceClient
	caller string
}

func NewGRPCClient(address, caller string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(callerUnaryInterceptor(caller)))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewBatcherServiceClient(conn), caller: caller}, nil
}

func callerUnaryInterceptor(caller string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if caller != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, common.CallerHeaderName, caller)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) RequestDeposit(ctx context.Context, requester, amount, authorization string) (*pb.Account, error) {
	resp, err := c.client.RequestDeposit(ctx, &pb.RequestDepositRequest{
		Requester:     requester,
		Amount:        amount,
		Authorization: authorization,
	})
	if err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *GRPCClient) RequestDepositViaConversion(ctx context.Context, requester, amountIn, authorization string) (string, *pb.Account, error) {
	resp, err := c.client.RequestDepositViaConversion(ctx, &pb.RequestDepositViaConversionRequest{
		Requester:     requester,
		AmountIn:      amountIn,
		Authorization: authorization,
	})
	if err != nil {
		return "", nil, err
	}
	return resp.Converted, resp.Account, nil
}

func (c *GRPCClient) RequestWithdraw(ctx context.Context, requester, amount, transferInShares string) (*pb.Account, error) {
	resp, err := c.client.RequestWithdraw(ctx, &pb.RequestWithdrawRequest{
		Requester:        requester,
		Amount:           amount,
		TransferInShares: transferInShares,
	})
	if err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *GRPCClient) Claim(ctx context.Context, requester, recipient, amount string) (*pb.Account, error) {
	resp, err := c.client.Claim(ctx, &pb.ClaimRequest{
		Requester: requester,
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *GRPCClient) SettleDeposits(ctx context.Context, users []string) (*pb.Settlement, error) {
	resp, err := c.client.SettleDeposits(ctx, &pb.SettleDepositsRequest{Users: users})
	if err != nil {
		return nil, err
	}
	return resp.Settlement, nil
}

func (c *GRPCClient) SettleWithdrawals(ctx context.Context, users []string) (*pb.Settlement, error) {
	resp, err := c.client.SettleWithdrawals(ctx, &pb.SettleWithdrawalsRequest{Users: users})
	if err != nil {
		return nil, err
	}
	return resp.Settlement, nil
}

func (c *GRPCClient) SetCapacity(ctx context.Context, max string) error {
	_, err := c.client.SetCapacity(ctx, &pb.SetCapacityRequest{Max: max})
	return err
}

func (c *GRPCClient) SetSlippageTolerance(ctx context.Context, bps int32) error {
	_, err := c.client.SetSlippageTolerance(ctx, &pb.SetSlippageToleranceRequest{Bps: bps})
	return err
}

func (c *GRPCClient) SetAuthority(ctx context.Context, authorityKey string) error {
	_, err := c.client.SetAuthority(ctx, &pb.SetAuthorityRequest{AuthorityKey: authorityKey})
	return err
}

func (c *GRPCClient) ProposeGovernance(ctx context.Context, candidate string) error {
	_, err := c.client.ProposeGovernance(ctx, &pb.ProposeGovernanceRequest{Candidate: candidate})
	return err
}

func (c *GRPCClient) AcceptGovernance(ctx context.Context) error {
	_, err := c.client.AcceptGovernance(ctx, &pb.AcceptGovernanceRequest{})
	return err
}

func (c *GRPCClient) EmergencySweep(ctx context.Context, asset string) (string, error) {
	resp, err := c.client.EmergencySweep(ctx, &pb.EmergencySweepRequest{Asset: asset})
	if err != nil {
		return "", err
	}
	return resp.Amount, nil
}

func (c *GRPCClient) GetAccount(ctx context.Context, address string) (*pb.Account, error) {
	resp, err := c.client.GetAccount(ctx, &pb.GetAccountRequest{Address: address})
	if err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *GRPCClient) GetParams(ctx context.Context) (*pb.Params, *pb.Binding, error) {
	resp, err := c.client.GetParams(ctx, &pb.GetParamsRequest{})
	if err != nil {
		return nil, nil, err
	}
	return resp.Params, resp.Binding, nil
}

func (c *GRPCClient) GetSettlement(ctx context.Context, id string) (*pb.Settlement, error) {
	resp, err := c.client.GetSettlement(ctx, &pb.GetSettlementRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.Settlement, nil
}
