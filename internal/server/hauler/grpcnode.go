package hauler

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tidemill/haulbatch/internal/common"
	pb "github.com/tidemill/haulbatch/internal/proto"
)

// GRPCNode talks to the hauler node over gRPC. The bound vault and conversion
// pool are fixed at construction so callers never pass IDs per call.
type GRPCNode struct {
	conn    *grpc.ClientConn
	client  pb.HaulerNodeServiceClient
	vaultID string
}

func NewGRPCNode(address, vaultID string) (*GRPCNode, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("hauler dial error: %w", err)
	}
	return &GRPCNode{
		conn:    conn,
		client:  pb.NewHaulerNodeServiceClient(conn),
		vaultID: vaultID,
	}, nil
}

func (n *GRPCNode) Close() error {
	return n.conn.Close()
}

func parseAmount(s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("%w: malformed amount %q from node", common.ErrInternal, s)
	}
	return v, nil
}

func (n *GRPCNode) Deposit(ctx context.Context, amount math.Int, beneficiary string) (math.Int, error) {
	resp, err := n.client.VaultDeposit(ctx, &pb.VaultDepositRequest{
		VaultId:     n.vaultID,
		Amount:      amount.String(),
		Beneficiary: beneficiary,
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return parseAmount(resp.Shares)
}

func (n *GRPCNode) Withdraw(ctx context.Context, shareAmount math.Int, beneficiary string) (math.Int, error) {
	resp, err := n.client.VaultWithdraw(ctx, &pb.VaultWithdrawRequest{
		VaultId:     n.vaultID,
		ShareAmount: shareAmount.String(),
		Beneficiary: beneficiary,
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return parseAmount(resp.Amount)
}

func (n *GRPCNode) AcceptedAsset(ctx context.Context) (string, error) {
	resp, err := n.client.AcceptedAsset(ctx, &pb.AcceptedAssetRequest{VaultId: n.vaultID})
	if err != nil {
		return "", err
	}
	return resp.Asset, nil
}

func (n *GRPCNode) Operator(ctx context.Context) (string, error) {
	resp, err := n.client.Operator(ctx, &pb.OperatorRequest{VaultId: n.vaultID})
	if err != nil {
		return "", err
	}
	return resp.Operator, nil
}

func (n *GRPCNode) Transfer(ctx context.Context, asset, to string, amount math.Int) error {
	_, err := n.client.Transfer(ctx, &pb.TransferRequest{
		Asset:  asset,
		To:     to,
		Amount: amount.String(),
	})
	return err
}

func (n *GRPCNode) TransferFrom(ctx context.Context, asset, from, to string, amount math.Int) error {
	_, err := n.client.TransferFrom(ctx, &pb.TransferFromRequest{
		Asset:  asset,
		From:   from,
		To:     to,
		Amount: amount.String(),
	})
	return err
}

func (n *GRPCNode) BalanceOf(ctx context.Context, asset, holder string) (math.Int, error) {
	resp, err := n.client.BalanceOf(ctx, &pb.BalanceOfRequest{Asset: asset, Holder: holder})
	if err != nil {
		return math.ZeroInt(), err
	}
	return parseAmount(resp.Balance)
}

func (n *GRPCNode) Approve(ctx context.Context, asset, spender string, amount math.Int) error {
	_, err := n.client.Approve(ctx, &pb.ApproveRequest{
		Asset:   asset,
		Spender: spender,
		Amount:  amount.String(),
	})
	return err
}

func (n *GRPCNode) EstimateWithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32) (math.Int, error) {
	resp, err := n.client.EstimateWithdrawOneAsset(ctx, &pb.EstimateWithdrawOneAssetRequest{
		PoolId:     pool,
		Amount:     amount.String(),
		AssetIndex: assetIndex,
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return parseAmount(resp.AmountOut)
}

func (n *GRPCNode) WithdrawOneAsset(ctx context.Context, pool string, amount math.Int, assetIndex int32, minOut math.Int) (math.Int, error) {
	resp, err := n.client.WithdrawOneAsset(ctx, &pb.WithdrawOneAssetRequest{
		PoolId:     pool,
		Amount:     amount.String(),
		AssetIndex: assetIndex,
		MinOut:     minOut.String(),
	})
	if err != nil {
		return math.ZeroInt(), err
	}
	return parseAmount(resp.AmountOut)
}
