package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	"github.com/google/uuid"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/hauler"
	"github.com/tidemill/haulbatch/internal/server/models"
	"github.com/tidemill/haulbatch/internal/server/repositories/repomanager"
)

// ReportArchiver receives the audit record of a committed settlement.
// Archival is best-effort and runs after commit; it can never fail a
// settlement.
type ReportArchiver interface {
	Archive(ctx context.Context, s *models.Settlement) error
}

// SettlementService aggregates outstanding ledger entries into one vault call
// and distributes the measured proceeds pro-rata.
//
// The discipline for both directions is: read and sum, call the vault once,
// measure the actual balance change, verify it against what the vault
// reported, and only then mutate the ledger inside one transaction. A
// mismatch aborts the whole batch with zero state change.
type SettlementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	node        hauler.Node
	guard       *OpGuard
	archiver    ReportArchiver // may be nil

	selfAddress string

	logger logging.Logger
}

func NewSettlementService(db *sql.DB, rm repomanager.RepositoryManager, node hauler.Node, guard *OpGuard, archiver ReportArchiver, cfg *config.Config, logger logging.Logger) *SettlementService {
	return &SettlementService{
		db:          db,
		repomanager: rm,
		node:        node,
		guard:       guard,
		archiver:    archiver,
		selfAddress: cfg.SelfAddress,
		logger:      logger.With("module", "settlement"),
	}
}

// batchEntry is one unique user's contribution to an ephemeral batch.
type batchEntry struct {
	account *models.Account
	amount  math.Int
}

// collectBatch deduplicates the submitted users in order and sums the pending
// amount selected by pendingOf. Users with nothing pending stay in the
// deduplicated list but contribute no entry.
func (s *SettlementService) collectBatch(ctx context.Context, users []string, pendingOf func(*models.Account) math.Int) ([]string, []batchEntry, math.Int, error) {
	repo := s.repomanager.Accounts(s.db)

	seen := make(map[string]struct{}, len(users))
	unique := make([]string, 0, len(users))
	entries := make([]batchEntry, 0, len(users))
	total := math.ZeroInt()

	for _, addr := range users {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		unique = append(unique, addr)

		account, err := repo.Get(ctx, addr)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, nil, math.ZeroInt(), err
		}

		amount := pendingOf(account)
		if !amount.IsPositive() {
			continue
		}
		entries = append(entries, batchEntry{account: account, amount: amount})
		total = total.Add(amount)
	}

	return unique, entries, total, nil
}

// allocate computes each entry's floor-division pro-rata slice of measured
// and the nonnegative residue left with the batcher.
func allocate(entries []batchEntry, total, measured math.Int) ([]math.Int, math.Int) {
	shares := make([]math.Int, len(entries))
	allocated := math.ZeroInt()
	for i, e := range entries {
		share := e.amount.Mul(measured).Quo(total)
		shares[i] = share
		allocated = allocated.Add(share)
	}
	return shares, measured.Sub(allocated)
}

// SettleDeposits performs one vault deposit for every listed user's pending
// deposit and credits the minted shares pro-rata to their settled balances.
// Only the vault operator may call it.
func (s *SettlementService) SettleDeposits(ctx context.Context, caller string, users []string) (*models.Settlement, error) {
	defer s.guard.Enter()()

	if err := requireOperator(ctx, s.node, caller); err != nil {
		return nil, err
	}

	binding, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}

	unique, entries, total, err := s.collectBatch(ctx, users, func(a *models.Account) math.Int {
		return a.PendingDeposit
	})
	if err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, common.ErrEmptyBatch
	}

	// One external call, bracketed by our own balance measurements. Shares
	// circulate as the vault's own asset ID.
	before, err := s.node.BalanceOf(ctx, binding.VaultID, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("balance query error: %w", err)
	}
	reported, err := s.node.Deposit(ctx, total, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("vault deposit error: %w", err)
	}
	after, err := s.node.BalanceOf(ctx, binding.VaultID, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("balance query error: %w", err)
	}

	measured := after.Sub(before)
	if !measured.Equal(reported) {
		return nil, fmt.Errorf("%w: vault reported %s, measured %s", common.ErrSettlementMismatch, reported, measured)
	}

	shares, residue := allocate(entries, total, measured)

	record := &models.Settlement{
		ID:        uuid.NewString(),
		Direction: models.SettleDeposits,
		Users:     unique,
		Requested: total,
		Reported:  reported,
		Measured:  measured,
		Residue:   residue,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		for i, e := range entries {
			e.account.SettledShares = e.account.SettledShares.Add(shares[i])
			e.account.PendingDeposit = math.ZeroInt()
			if err := repo.Save(ctx, e.account); err != nil {
				return err
			}
		}
		return s.repomanager.Settlements(tx).Create(ctx, record)
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "deposit batch settled",
		"id", record.ID, "users", len(unique), "requested", total.String(),
		"measured", measured.String(), "residue", residue.String())
	s.archive(ctx, record)

	return record, nil
}

// SettleWithdrawals performs one vault redemption for every listed user's
// pending withdrawal and pays the underlying asset out immediately, pro-rata.
// Unlike deposits, nothing is left to claim: withdrawals terminate in an
// external transfer.
func (s *SettlementService) SettleWithdrawals(ctx context.Context, caller string, users []string) (*models.Settlement, error) {
	defer s.guard.Enter()()

	if err := requireOperator(ctx, s.node, caller); err != nil {
		return nil, err
	}

	binding, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}

	unique, entries, total, err := s.collectBatch(ctx, users, func(a *models.Account) math.Int {
		return a.PendingWithdraw
	})
	if err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, common.ErrEmptyBatch
	}

	before, err := s.node.BalanceOf(ctx, binding.AcceptedAsset, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("balance query error: %w", err)
	}
	reported, err := s.node.Withdraw(ctx, total, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("vault withdraw error: %w", err)
	}
	after, err := s.node.BalanceOf(ctx, binding.AcceptedAsset, s.selfAddress)
	if err != nil {
		return nil, fmt.Errorf("balance query error: %w", err)
	}

	measured := after.Sub(before)
	if !measured.Equal(reported) {
		return nil, fmt.Errorf("%w: vault reported %s, measured %s", common.ErrSettlementMismatch, reported, measured)
	}

	payouts, residue := allocate(entries, total, measured)

	// Pay out before mutating, same ordering as every other operation. The
	// node applies the enclosing operation atomically, so a failed transfer
	// aborts the batch with the ledger untouched.
	for i, e := range entries {
		if !payouts[i].IsPositive() {
			continue
		}
		if err := s.node.Transfer(ctx, binding.AcceptedAsset, e.account.Address, payouts[i]); err != nil {
			return nil, fmt.Errorf("payout transfer error: %w", err)
		}
	}

	record := &models.Settlement{
		ID:        uuid.NewString(),
		Direction: models.SettleWithdrawals,
		Users:     unique,
		Requested: total,
		Reported:  reported,
		Measured:  measured,
		Residue:   residue,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		for _, e := range entries {
			e.account.PendingWithdraw = math.ZeroInt()
			if err := repo.Save(ctx, e.account); err != nil {
				return err
			}
		}
		return s.repomanager.Settlements(tx).Create(ctx, record)
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "withdrawal batch settled",
		"id", record.ID, "users", len(unique), "requested", total.String(),
		"measured", measured.String(), "residue", residue.String())
	s.archive(ctx, record)

	return record, nil
}

// GetSettlement returns a persisted settlement record.
func (s *SettlementService) GetSettlement(ctx context.Context, id string) (*models.Settlement, error) {
	return s.repomanager.Settlements(s.db).Get(ctx, id)
}

func (s *SettlementService) archive(ctx context.Context, record *models.Settlement) {
	if s.archiver == nil {
		return
	}
	if err := s.archiver.Archive(ctx, record); err != nil {
		s.logger.Warn(ctx, "report archive failed", "id", record.ID, "error", err.Error())
	}
}
