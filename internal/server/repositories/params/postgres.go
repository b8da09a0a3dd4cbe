package params

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Get(ctx context.Context) (*models.Params, error) {
	query :=
		`SELECT slippage_bps, governance, pending_governance, authority_key FROM params
		 WHERE id = 1
		 `

	p := &models.Params{}
	err := r.db.QueryRowContext(ctx, query).
		Scan(&p.SlippageBps, &p.Governance, &p.PendingGovernance, &p.AuthorityKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Save(ctx context.Context, p *models.Params) error {
	query :=
		`INSERT INTO params (id, slippage_bps, governance, pending_governance, authority_key)
         VALUES (1, $1, $2, $3, $4)
         ON CONFLICT (id) DO UPDATE
         SET slippage_bps = EXCLUDED.slippage_bps,
             governance = EXCLUDED.governance,
             pending_governance = EXCLUDED.pending_governance,
             authority_key = EXCLUDED.authority_key
		 `

	_, err := r.db.ExecContext(ctx, query,
		p.SlippageBps, p.Governance, p.PendingGovernance, p.AuthorityKey)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
