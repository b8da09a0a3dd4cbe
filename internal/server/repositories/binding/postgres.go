package binding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cosmossdk.io/math"

	"github.com/tidemill/haulbatch/internal/common"
	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.Binding, error) {
	query :=
		`SELECT vault_id, accepted_asset, max_pending, current_pending FROM binding
		 WHERE id = 1
		 `

	b := &models.Binding{}
	var maxPending, currentPending string
	err := r.db.QueryRowContext(ctx, query).
		Scan(&b.VaultID, &b.AcceptedAsset, &maxPending, &currentPending)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var ok bool
	if b.MaxPending, ok = math.NewIntFromString(maxPending); !ok {
		return nil, fmt.Errorf("db error: invalid numeric %q", maxPending)
	}
	if b.CurrentPending, ok = math.NewIntFromString(currentPending); !ok {
		return nil, fmt.Errorf("db error: invalid numeric %q", currentPending)
	}

	return b, nil
}

func (r *PostgresRepository) Save(ctx context.Context, b *models.Binding) error {
	query :=
		`INSERT INTO binding (id, vault_id, accepted_asset, max_pending, current_pending)
         VALUES (1, $1, $2, $3, $4)
         ON CONFLICT (id) DO UPDATE
         SET vault_id = EXCLUDED.vault_id,
             accepted_asset = EXCLUDED.accepted_asset,
             max_pending = EXCLUDED.max_pending,
             current_pending = EXCLUDED.current_pending
		 `

	_, err := r.db.ExecContext(ctx, query,
		b.VaultID, b.AcceptedAsset, b.MaxPending.String(), b.CurrentPending.String())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
