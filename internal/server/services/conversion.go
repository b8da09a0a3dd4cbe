package services

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/server/models"
)

// RequestDepositViaConversion accepts the alternate input asset, converts it
// into the vault's accepted asset through the external pool, and records the
// converted amount as a pending deposit.
//
// The minimum acceptable output is quoted first and discounted by the
// configured slippage tolerance; if the pool cannot meet it, the pool call
// fails and that failure propagates untouched.
func (s *LedgerService) RequestDepositViaConversion(ctx context.Context, requester string, amountIn math.Int, authToken string) (*models.Account, math.Int, error) {
	defer s.guard.Enter()()

	zero := math.ZeroInt()

	if !amountIn.IsPositive() {
		return nil, zero, fmt.Errorf("%w: input amount must be positive", common.ErrInvalidParameter)
	}

	binding, p, err := s.loadState(ctx)
	if err != nil {
		return nil, zero, err
	}
	account, err := s.getAccount(ctx, s.db, requester)
	if err != nil {
		return nil, zero, err
	}

	authorityKey, err := auth.DecodeAuthorityKey(p.AuthorityKey)
	if err != nil {
		return nil, zero, err
	}
	tokenID, err := s.gate.AuthorizeDeposit(requester, authToken, authorityKey, account)
	if err != nil {
		return nil, zero, err
	}

	expected, err := s.node.EstimateWithdrawOneAsset(ctx, s.poolID, amountIn, s.poolAssetIndex)
	if err != nil {
		return nil, zero, fmt.Errorf("pool estimate error: %w", err)
	}
	minOut := MinAcceptableOutput(expected, p.SlippageBps)

	// Pull the input asset in, allow the pool to spend it, then convert. The
	// pool enforces minOut.
	if err := s.node.TransferFrom(ctx, s.inputAsset, requester, s.selfAddress, amountIn); err != nil {
		return nil, zero, fmt.Errorf("asset transfer error: %w", err)
	}
	if err := s.node.Approve(ctx, s.inputAsset, s.poolID, amountIn); err != nil {
		return nil, zero, fmt.Errorf("pool approve error: %w", err)
	}
	converted, err := s.node.WithdrawOneAsset(ctx, s.poolID, amountIn, s.poolAssetIndex, minOut)
	if err != nil {
		return nil, zero, err
	}

	if binding.CurrentPending.Add(converted).GT(binding.MaxPending) {
		return nil, zero, fmt.Errorf("%w: aggregate pending would exceed %s", common.ErrCapacityExceeded, binding.MaxPending)
	}
	s.gate.Consume(tokenID)

	account.PendingDeposit = account.PendingDeposit.Add(converted)
	binding.CurrentPending = binding.CurrentPending.Add(converted)

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
			return err
		}
		return s.repomanager.Binding(tx).Save(ctx, binding)
	}); err != nil {
		return nil, zero, err
	}

	s.logger.Info(ctx, "converted deposit recorded",
		"requester", requester, "amount_in", amountIn.String(), "converted", converted.String())
	return account, converted, nil
}

// MinAcceptableOutput applies the slippage tolerance to a quoted output:
// expected * (MaxBasisPoints - slippageBps) / MaxBasisPoints, floor division.
func MinAcceptableOutput(expected math.Int, slippageBps int32) math.Int {
	keep := math.NewInt(int64(common.MaxBasisPoints - slippageBps))
	return expected.Mul(keep).Quo(math.NewInt(int64(common.MaxBasisPoints)))
}
