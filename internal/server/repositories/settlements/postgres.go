package settlements

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, s *models.Settlement) error {
	users, err := json.Marshal(s.Users)
	if err != nil {
		return fmt.Errorf("users encode error: %w", err)
	}

	query :=
		`INSERT INTO settlements (id, direction, users, total_requested, reported, measured, residue, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 `

	_, err = r.db.ExecContext(ctx, query,
		s.ID, string(s.Direction), users,
		s.Requested.String(), s.Reported.String(), s.Measured.String(), s.Residue.String())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Settlement, error) {
	query :=
		`SELECT id, direction, users, total_requested, reported, measured, residue, created_at FROM settlements
		 WHERE id = $1
		 `

	s := &models.Settlement{}
	var direction string
	var users []byte
	var requested, reported, measured, residue string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &direction, &users, &requested, &reported, &measured, &residue, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.Direction = models.SettlementDirection(direction)
	if err := json.Unmarshal(users, &s.Users); err != nil {
		return nil, fmt.Errorf("users decode error: %w", err)
	}

	for _, col := range []struct {
		raw string
		dst *math.Int
	}{
		{requested, &s.Requested},
		{reported, &s.Reported},
		{measured, &s.Measured},
		{residue, &s.Residue},
	} {
		v, ok := math.NewIntFromString(col.raw)
		if !ok {
			return nil, fmt.Errorf("db error: invalid numeric %q", col.raw)
		}
		*col.dst = v
	}

	return s, nil
}
