// Package params persists governance parameters: slippage tolerance,
// governance addresses, and the deposit-authorization authority key.
package params

import (
	"context"

	"github.com/tidemill/haulbatch/internal/server/models"
)

type Repository interface {
	// Get returns the single params row, or common.ErrNotFound before
	// bootstrap has run.
	Get(ctx context.Context) (*models.Params, error)

	// Save upserts the params row.
	Save(ctx context.Context, p *models.Params) error
}
