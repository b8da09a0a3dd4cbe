package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/server/migrations"
	"github.com/tidemill/haulbatch/internal/server/repositories/accounts"
	"github.com/tidemill/haulbatch/internal/server/repositories/binding"
	"github.com/tidemill/haulbatch/internal/server/repositories/params"
	"github.com/tidemill/haulbatch/internal/server/repositories/settlements"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Binding(db dbx.DBTX) binding.Repository {
	return binding.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Params(db dbx.DBTX) params.Repository {
	return params.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Settlements(db dbx.DBTX) settlements.Repository {
	return settlements.NewPostgresRepository(db)
}

// RunMigrations applies the embedded goose migrations through the pgx driver.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
