package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/hauler"
	"github.com/tidemill/haulbatch/internal/server/models"
	"github.com/tidemill/haulbatch/internal/server/repositories/repomanager"
)

// LedgerService handles the user-facing requests: deposit, withdraw, claim.
// Every operation follows the same discipline: validate, perform external
// calls, and only then mutate the ledger inside one transaction. A failure at
// any point leaves the ledger exactly as before the call.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *auth.Gate
	node        hauler.Node
	guard       *OpGuard

	selfAddress    string
	inputAsset     string
	poolID         string
	poolAssetIndex int32

	logger logging.Logger
}

func NewLedgerService(db *sql.DB, rm repomanager.RepositoryManager, gate *auth.Gate, node hauler.Node, guard *OpGuard, cfg *config.Config, logger logging.Logger) *LedgerService {
	return &LedgerService{
		db:             db,
		repomanager:    rm,
		gate:           gate,
		node:           node,
		guard:          guard,
		selfAddress:    cfg.SelfAddress,
		inputAsset:     cfg.InputAsset,
		poolID:         cfg.PoolID,
		poolAssetIndex: cfg.PoolAssetIndex,
		logger:         logger.With("module", "ledger"),
	}
}

// getAccount loads the ledger triplet, treating absence as a zeroed account.
// Accounts come into existence on first use and are never deleted.
func (s *LedgerService) getAccount(ctx context.Context, db dbx.DBTX, address string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(db).Get(ctx, address)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.NewAccount(address), nil
		}
		return nil, err
	}
	return account, nil
}

// RequestDeposit records a pending deposit for the requester. The authToken
// must be minted by the configured authority and bound to the requester; the
// accepted asset moves into the batcher before the ledger is touched.
func (s *LedgerService) RequestDeposit(ctx context.Context, requester string, amount math.Int, authToken string) (*models.Account, error) {
	defer s.guard.Enter()()

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", common.ErrInvalidParameter)
	}

	binding, p, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	account, err := s.getAccount(ctx, s.db, requester)
	if err != nil {
		return nil, err
	}

	authorityKey, err := auth.DecodeAuthorityKey(p.AuthorityKey)
	if err != nil {
		return nil, err
	}
	tokenID, err := s.gate.AuthorizeDeposit(requester, authToken, authorityKey, account)
	if err != nil {
		return nil, err
	}

	if binding.CurrentPending.Add(amount).GT(binding.MaxPending) {
		return nil, fmt.Errorf("%w: aggregate pending would exceed %s", common.ErrCapacityExceeded, binding.MaxPending)
	}

	// External transfer first; the ledger only changes once the funds are here.
	// The token stays unconsumed until the transfer lands, so a failed
	// transfer leaves the authorization usable.
	if err := s.node.TransferFrom(ctx, binding.AcceptedAsset, requester, s.selfAddress, amount); err != nil {
		return nil, fmt.Errorf("asset transfer error: %w", err)
	}
	s.gate.Consume(tokenID)

	account.PendingDeposit = account.PendingDeposit.Add(amount)
	binding.CurrentPending = binding.CurrentPending.Add(amount)

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
			return err
		}
		return s.repomanager.Binding(tx).Save(ctx, binding)
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "deposit recorded", "requester", requester, "amount", amount.String())
	return account, nil
}

// RequestWithdraw records a pending withdrawal of vault shares. The user may
// cover part of the amount with shares held outside the batcher by supplying
// transferInShares, which are pulled in via TransferFrom; the remainder comes
// out of their settled balance.
func (s *LedgerService) RequestWithdraw(ctx context.Context, requester string, amount, transferInShares math.Int) (*models.Account, error) {
	defer s.guard.Enter()()

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdraw amount must be positive", common.ErrInvalidParameter)
	}
	if transferInShares.IsNegative() || transferInShares.GT(amount) {
		return nil, fmt.Errorf("%w: transfer-in shares must be in [0, amount]", common.ErrInvalidParameter)
	}

	binding, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}
	account, err := s.getAccount(ctx, s.db, requester)
	if err != nil {
		return nil, err
	}

	if account.PendingDeposit.IsPositive() {
		return nil, common.ErrConflictingDirection
	}

	internalUse := amount.Sub(transferInShares)
	if account.SettledShares.LT(internalUse) {
		return nil, fmt.Errorf("%w: settled %s, need %s", common.ErrInsufficientBalance, account.SettledShares, internalUse)
	}

	if transferInShares.IsPositive() {
		if err := s.node.TransferFrom(ctx, binding.VaultID, requester, s.selfAddress, transferInShares); err != nil {
			return nil, fmt.Errorf("share transfer error: %w", err)
		}
	}

	account.SettledShares = account.SettledShares.Sub(internalUse)
	account.PendingWithdraw = account.PendingWithdraw.Add(amount)
	// The aggregate deposit counter shrinks by the withdrawn amount, freeing
	// capacity; it floors at zero rather than going negative.
	binding.CurrentPending = binding.CurrentPending.Sub(amount)
	if binding.CurrentPending.IsNegative() {
		binding.CurrentPending = math.ZeroInt()
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
			return err
		}
		return s.repomanager.Binding(tx).Save(ctx, binding)
	}); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "withdraw recorded", "requester", requester, "amount", amount.String(), "transfer_in", transferInShares.String())
	return account, nil
}

// Claim pays out settled shares to the recipient.
func (s *LedgerService) Claim(ctx context.Context, requester string, amount math.Int, recipient string) (*models.Account, error) {
	defer s.guard.Enter()()

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: claim amount must be positive", common.ErrInvalidParameter)
	}
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient required", common.ErrInvalidParameter)
	}

	binding, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}
	account, err := s.getAccount(ctx, s.db, requester)
	if err != nil {
		return nil, err
	}

	if account.SettledShares.LT(amount) {
		return nil, fmt.Errorf("%w: settled %s, claim %s", common.ErrInsufficientBalance, account.SettledShares, amount)
	}

	if err := s.node.Transfer(ctx, binding.VaultID, recipient, amount); err != nil {
		return nil, fmt.Errorf("share transfer error: %w", err)
	}

	account.SettledShares = account.SettledShares.Sub(amount)

	if err := s.repomanager.Accounts(s.db).Save(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "claim paid", "requester", requester, "recipient", recipient, "amount", amount.String())
	return account, nil
}

// GetAccount returns the ledger triplet without mutation.
func (s *LedgerService) GetAccount(ctx context.Context, address string) (*models.Account, error) {
	return s.getAccount(ctx, s.db, address)
}

func (s *LedgerService) loadState(ctx context.Context) (*models.Binding, *models.Params, error) {
	binding, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.repomanager.Params(s.db).Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	return binding, p, nil
}
