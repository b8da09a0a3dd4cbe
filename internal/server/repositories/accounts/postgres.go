package accounts

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

func (r *PostgresRepository) Get(ctx context.Context, address string) (*models.Account, error) {
	query :=
		`SELECT address, pending_deposit, pending_withdraw, settled_shares, updated_at FROM accounts
		 WHERE address = $1
		 `

	account := &models.Account{}
	var pd, pw, ss string
	err := r.db.QueryRowContext(ctx, query, address).
		Scan(&account.Address, &pd, &pw, &ss, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if account.PendingDeposit, err = parseInt(pd); err != nil {
		return nil, err
	}
	if account.PendingWithdraw, err = parseInt(pw); err != nil {
		return nil, err
	}
	if account.SettledShares, err = parseInt(ss); err != nil {
		return nil, err
	}

	return account, nil
}

func (r *PostgresRepository) Save(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO accounts (address, pending_deposit, pending_withdraw, settled_shares, updated_at)
         VALUES ($1, $2, $3, $4, now())
         ON CONFLICT (address) DO UPDATE
         SET pending_deposit = EXCLUDED.pending_deposit,
             pending_withdraw = EXCLUDED.pending_withdraw,
             settled_shares = EXCLUDED.settled_shares,
             updated_at = now()
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.Address,
		account.PendingDeposit.String(),
		account.PendingWithdraw.String(),
		account.SettledShares.String(),
	)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// parseInt converts a NUMERIC column scanned as text into a math.Int.
func parseInt(s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("db error: invalid numeric %q", s)
	}
	return v, nil
}
