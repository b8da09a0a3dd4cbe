// Package accounts persists the per-user ledger triplet.
package accounts

import (
	"context"

	"github.com/tidemill/haulbatch/internal/server/models"
)

type Repository interface {
	// Get returns the account for the address, or common.ErrNotFound when no
	// row exists yet. Callers usually treat absence as a zeroed account.
	Get(ctx context.Context, address string) (*models.Account, error)

	// Save upserts the full ledger triplet for the account's address.
	Save(ctx context.Context, account *models.Account) error
}
