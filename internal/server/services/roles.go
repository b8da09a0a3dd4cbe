package services

import (
	"context"
	"fmt"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/server/hauler"
	"github.com/tidemill/haulbatch/internal/server/models"
)

// requireOperator resolves the operator live from the bound vault and checks
// the caller against it. The operator is never cached locally: rotating the
// vault's operator instantly rotates who may drive the batcher.
func requireOperator(ctx context.Context, vault hauler.Vault, caller string) error {
	operator, err := vault.Operator(ctx)
	if err != nil {
		return fmt.Errorf("operator lookup error: %w", err)
	}
	if caller == "" || caller != operator {
		return fmt.Errorf("%w: caller is not the vault operator", common.ErrUnauthorized)
	}
	return nil
}

// requireGovernance checks the caller against the stored governance address.
func requireGovernance(p *models.Params, caller string) error {
	if caller == "" || caller != p.Governance {
		return fmt.Errorf("%w: caller is not governance", common.ErrUnauthorized)
	}
	return nil
}
