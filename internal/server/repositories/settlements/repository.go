// Package settlements persists the audit record of every settled batch.
package settlements

import (
	"context"

	"github.com/tidemill/haulbatch/internal/server/models"
)

type Repository interface {
	// Create inserts the settlement record.
	Create(ctx context.Context, s *models.Settlement) error

	// Get returns a settlement by ID, or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Settlement, error)
}
