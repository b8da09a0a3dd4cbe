// Package binding persists the vault binding and its capacity counters.
package binding

import (
	"context"

	"github.com/tidemill/haulbatch/internal/server/models"
)

type Repository interface {
	// Get returns the single binding row, or common.ErrNotFound before
	// bootstrap has run.
	Get(ctx context.Context) (*models.Binding, error)

	// Save upserts the binding row.
	Save(ctx context.Context, b *models.Binding) error
}
