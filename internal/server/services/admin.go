package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/hauler"
	"github.com/tidemill/haulbatch/internal/server/models"
	"github.com/tidemill/haulbatch/internal/server/repositories/repomanager"
)

// AdminService covers parameter updates, role management, and the emergency
// sweep. Operator rights are resolved live from the vault; governance and its
// two-phase handover live in the params row.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	node        hauler.Node
	guard       *OpGuard

	selfAddress string

	logger logging.Logger
}

func NewAdminService(db *sql.DB, rm repomanager.RepositoryManager, node hauler.Node, guard *OpGuard, cfg *config.Config, logger logging.Logger) *AdminService {
	return &AdminService{
		db:          db,
		repomanager: rm,
		node:        node,
		guard:       guard,
		selfAddress: cfg.SelfAddress,
		logger:      logger.With("module", "admin"),
	}
}

// Bootstrap creates the binding and params rows on first start. Existing rows
// are left untouched so restarts never clobber live state.
func (s *AdminService) Bootstrap(ctx context.Context, cfg *config.Config) error {
	bindingRepo := s.repomanager.Binding(s.db)
	if _, err := bindingRepo.Get(ctx); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		maxPending, ok := math.NewIntFromString(cfg.MaxPendingDeposits)
		if !ok {
			return fmt.Errorf("%w: malformed max pending deposits %q", common.ErrInvalidParameter, cfg.MaxPendingDeposits)
		}
		acceptedAsset, err := s.node.AcceptedAsset(ctx)
		if err != nil {
			return fmt.Errorf("accepted asset lookup error: %w", err)
		}
		b := &models.Binding{
			VaultID:        cfg.VaultID,
			AcceptedAsset:  acceptedAsset,
			MaxPending:     maxPending,
			CurrentPending: math.ZeroInt(),
		}
		if err := bindingRepo.Save(ctx, b); err != nil {
			return err
		}
		s.logger.Info(ctx, "binding created", "vault", b.VaultID, "asset", b.AcceptedAsset)
	}

	paramsRepo := s.repomanager.Params(s.db)
	if _, err := paramsRepo.Get(ctx); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		if _, err := auth.DecodeAuthorityKey(cfg.AuthorityKey); err != nil {
			return err
		}
		p := &models.Params{
			SlippageBps:  cfg.SlippageBps,
			Governance:   cfg.Governance,
			AuthorityKey: cfg.AuthorityKey,
		}
		if err := paramsRepo.Save(ctx, p); err != nil {
			return err
		}
		s.logger.Info(ctx, "params created", "governance", p.Governance)
	}

	return nil
}

// SetCapacity updates the aggregate pending-deposit cap. Operator only. The
// cap may be set below the current aggregate; the invariant binds future
// deposits, not the past.
func (s *AdminService) SetCapacity(ctx context.Context, caller string, max math.Int) error {
	defer s.guard.Enter()()

	if err := requireOperator(ctx, s.node, caller); err != nil {
		return err
	}
	if max.IsNegative() {
		return fmt.Errorf("%w: capacity must be nonnegative", common.ErrInvalidParameter)
	}

	repo := s.repomanager.Binding(s.db)
	b, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	b.MaxPending = max
	if err := repo.Save(ctx, b); err != nil {
		return err
	}

	s.logger.Info(ctx, "capacity updated", "max", max.String())
	return nil
}

// SetSlippageTolerance updates the conversion slippage bound. Operator only.
func (s *AdminService) SetSlippageTolerance(ctx context.Context, caller string, bps int32) error {
	defer s.guard.Enter()()

	if err := requireOperator(ctx, s.node, caller); err != nil {
		return err
	}
	if bps < 0 || bps > common.MaxBasisPoints {
		return fmt.Errorf("%w: slippage must be in [0, %d]", common.ErrInvalidParameter, common.MaxBasisPoints)
	}

	repo := s.repomanager.Params(s.db)
	p, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	p.SlippageBps = bps
	if err := repo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Info(ctx, "slippage updated", "bps", bps)
	return nil
}

// SetAuthority replaces the deposit-authorization authority key. Governance
// only.
func (s *AdminService) SetAuthority(ctx context.Context, caller, authorityKey string) error {
	defer s.guard.Enter()()

	repo := s.repomanager.Params(s.db)
	p, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if err := requireGovernance(p, caller); err != nil {
		return err
	}
	if _, err := auth.DecodeAuthorityKey(authorityKey); err != nil {
		return err
	}

	p.AuthorityKey = authorityKey
	if err := repo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Info(ctx, "authority updated")
	return nil
}

// ProposeGovernance starts the two-phase governance handover.
func (s *AdminService) ProposeGovernance(ctx context.Context, caller, candidate string) error {
	defer s.guard.Enter()()

	repo := s.repomanager.Params(s.db)
	p, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if err := requireGovernance(p, caller); err != nil {
		return err
	}
	if candidate == "" {
		return fmt.Errorf("%w: candidate required", common.ErrInvalidParameter)
	}

	p.PendingGovernance = candidate
	if err := repo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Info(ctx, "governance proposed", "candidate", candidate)
	return nil
}

// AcceptGovernance completes the handover. Only the pending candidate may
// call it; until then the old governance keeps every right.
func (s *AdminService) AcceptGovernance(ctx context.Context, caller string) error {
	defer s.guard.Enter()()

	repo := s.repomanager.Params(s.db)
	p, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if p.PendingGovernance == "" || caller != p.PendingGovernance {
		return fmt.Errorf("%w: caller is not the pending governance", common.ErrUnauthorized)
	}

	p.Governance = caller
	p.PendingGovernance = ""
	if err := repo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Info(ctx, "governance accepted", "governance", caller)
	return nil
}

// EmergencySweep transfers the batcher's whole balance of one asset to
// governance. Governance only.
func (s *AdminService) EmergencySweep(ctx context.Context, caller, asset string) (math.Int, error) {
	defer s.guard.Enter()()

	p, err := s.repomanager.Params(s.db).Get(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := requireGovernance(p, caller); err != nil {
		return math.ZeroInt(), err
	}
	if asset == "" {
		return math.ZeroInt(), fmt.Errorf("%w: asset required", common.ErrInvalidParameter)
	}

	balance, err := s.node.BalanceOf(ctx, asset, s.selfAddress)
	if err != nil {
		return math.ZeroInt(), fmt.Errorf("balance query error: %w", err)
	}
	if balance.IsPositive() {
		if err := s.node.Transfer(ctx, asset, p.Governance, balance); err != nil {
			return math.ZeroInt(), fmt.Errorf("sweep transfer error: %w", err)
		}
	}

	s.logger.Warn(ctx, "emergency sweep", "asset", asset, "amount", balance.String())
	return balance, nil
}

// GetParams returns the governance params and the binding for inspection.
func (s *AdminService) GetParams(ctx context.Context) (*models.Params, *models.Binding, error) {
	p, err := s.repomanager.Params(s.db).Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.repomanager.Binding(s.db).Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	return p, b, nil
}
