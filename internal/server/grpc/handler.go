package grpc

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tidemill/haulbatch/internal/common"
	pb "github.com/tidemill/haulbatch/internal/proto"
	"github.com/tidemill/haulbatch/internal/server/models"
)

// statusFromError maps the service sentinel errors onto gRPC status codes.
// Unknown errors are reported as Internal without leaking detail.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidParameter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidAuthorization):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrCapacityExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrConflictingDirection),
		errors.Is(err, common.ErrInsufficientBalance),
		errors.Is(err, common.ErrEmptyBatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrSettlementMismatch):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func parseAmount(field, value string) (math.Int, error) {
	v, ok := math.NewIntFromString(value)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("%w: malformed %s %q", common.ErrInvalidParameter, field, value)
	}
	return v, nil
}

func accountToProto(a *models.Account) *pb.Account {
	return &pb.Account{
		Address:         a.Address,
		PendingDeposit:  a.PendingDeposit.String(),
		PendingWithdraw: a.PendingWithdraw.String(),
		SettledShares:   a.SettledShares.String(),
		UpdatedAt:       a.UpdatedAt.Unix(),
	}
}

func settlementToProto(r *models.Settlement) *pb.Settlement {
	return &pb.Settlement{
		Id:        r.ID,
		Direction: string(r.Direction),
		Users:     r.Users,
		Requested: r.Requested.String(),
		Reported:  r.Reported.String(),
		Measured:  r.Measured.String(),
		Residue:   r.Residue.String(),
		CreatedAt: r.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) RequestDeposit(ctx context.Context, req *pb.RequestDepositRequest) (*pb.RequestDepositResponse, error) {

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, statusFromError(err)
	}

	account, err := s.ledger.RequestDeposit(ctx, req.Requester, amount, req.Authorization)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "deposit requested", "requester", req.Requester, "amount", req.Amount)
	return &pb.RequestDepositResponse{Account: accountToProto(account)}, nil
}

func (s *GRPCServer) RequestDepositViaConversion(ctx context.Context, req *pb.RequestDepositViaConversionRequest) (*pb.RequestDepositViaConversionResponse, error) {

	amountIn, err := parseAmount("amount_in", req.AmountIn)
	if err != nil {
		return nil, statusFromError(err)
	}

	account, converted, err := s.ledger.RequestDepositViaConversion(ctx, req.Requester, amountIn, req.Authorization)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "conversion deposit requested", "requester", req.Requester, "converted", converted.String())
	return &pb.RequestDepositViaConversionResponse{Converted: converted.String(), Account: accountToProto(account)}, nil
}

func (s *GRPCServer) RequestWithdraw(ctx context.Context, req *pb.RequestWithdrawRequest) (*pb.RequestWithdrawResponse, error) {

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, statusFromError(err)
	}
	transferIn := math.ZeroInt()
	if req.TransferInShares != "" {
		if transferIn, err = parseAmount("transfer_in_shares", req.TransferInShares); err != nil {
			return nil, statusFromError(err)
		}
	}

	account, err := s.ledger.RequestWithdraw(ctx, req.Requester, amount, transferIn)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "withdrawal requested", "requester", req.Requester, "amount", req.Amount)
	return &pb.RequestWithdrawResponse{Account: accountToProto(account)}, nil
}

func (s *GRPCServer) Claim(ctx context.Context, req *pb.ClaimRequest) (*pb.ClaimResponse, error) {

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, statusFromError(err)
	}

	account, err := s.ledger.Claim(ctx, req.Requester, amount, req.Recipient)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ClaimResponse{Account: accountToProto(account)}, nil
}

func (s *GRPCServer) SettleDeposits(ctx context.Context, req *pb.SettleDepositsRequest) (*pb.SettleDepositsResponse, error) {

	record, err := s.settlement.SettleDeposits(ctx, callerFromContext(ctx), req.Users)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "deposit batch settled", "batch", record.ID, "users", len(record.Users))
	return &pb.SettleDepositsResponse{Settlement: settlementToProto(record)}, nil
}

func (s *GRPCServer) SettleWithdrawals(ctx context.Context, req *pb.SettleWithdrawalsRequest) (*pb.SettleWithdrawalsResponse, error) {

	record, err := s.settlement.SettleWithdrawals(ctx, callerFromContext(ctx), req.Users)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "withdrawal batch settled", "batch", record.ID, "users", len(record.Users))
	return &pb.SettleWithdrawalsResponse{Settlement: settlementToProto(record)}, nil
}

func (s *GRPCServer) SetCapacity(ctx context.Context, req *pb.SetCapacityRequest) (*pb.SetCapacityResponse, error) {

	max, err := parseAmount("max", req.Max)
	if err != nil {
		return nil, statusFromError(err)
	}

	if err := s.admin.SetCapacity(ctx, callerFromContext(ctx), max); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.SetCapacityResponse{}, nil
}

func (s *GRPCServer) SetSlippageTolerance(ctx context.Context, req *pb.SetSlippageToleranceRequest) (*pb.SetSlippageToleranceResponse, error) {

	if err := s.admin.SetSlippageTolerance(ctx, callerFromContext(ctx), req.Bps); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.SetSlippageToleranceResponse{}, nil
}

func (s *GRPCServer) SetAuthority(ctx context.Context, req *pb.SetAuthorityRequest) (*pb.SetAuthorityResponse, error) {

	if err := s.admin.SetAuthority(ctx, callerFromContext(ctx), req.AuthorityKey); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.SetAuthorityResponse{}, nil
}

func (s *GRPCServer) ProposeGovernance(ctx context.Context, req *pb.ProposeGovernanceRequest) (*pb.ProposeGovernanceResponse, error) {

	if err := s.admin.ProposeGovernance(ctx, callerFromContext(ctx), req.Candidate); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.ProposeGovernanceResponse{}, nil
}

func (s *GRPCServer) AcceptGovernance(ctx context.Context, req *pb.AcceptGovernanceRequest) (*pb.AcceptGovernanceResponse, error) {

	if err := s.admin.AcceptGovernance(ctx, callerFromContext(ctx)); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.AcceptGovernanceResponse{}, nil
}

func (s *GRPCServer) EmergencySweep(ctx context.Context, req *pb.EmergencySweepRequest) (*pb.EmergencySweepResponse, error) {

	amount, err := s.admin.EmergencySweep(ctx, callerFromContext(ctx), req.Asset)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	return &pb.EmergencySweepResponse{Amount: amount.String()}, nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {

	account, err := s.ledger.GetAccount(ctx, req.Address)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetAccountResponse{Account: accountToProto(account)}, nil
}

func (s *GRPCServer) GetParams(ctx context.Context, req *pb.GetParamsRequest) (*pb.GetParamsResponse, error) {

	p, b, err := s.admin.GetParams(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetParamsResponse{
		Params: &pb.Params{
			SlippageBps:       p.SlippageBps,
			Governance:        p.Governance,
			PendingGovernance: p.PendingGovernance,
			AuthorityKey:      p.AuthorityKey,
		},
		Binding: &pb.Binding{
			VaultId:        b.VaultID,
			AcceptedAsset:  b.AcceptedAsset,
			MaxPending:     b.MaxPending.String(),
			CurrentPending: b.CurrentPending.String(),
		},
	}, nil
}

func (s *GRPCServer) GetSettlement(ctx context.Context, req *pb.GetSettlementRequest) (*pb.GetSettlementResponse, error) {

	record, err := s.settlement.GetSettlement(ctx, req.Id)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetSettlementResponse{Settlement: settlementToProto(record)}, nil
}
