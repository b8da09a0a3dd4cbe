// Package repomanager hands out repositories bound to a database handle.
// Services pass their *sql.DB for plain reads and the dbx.WithTx handle for
// transactional mutations, so every repository works in both modes.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/tidemill/haulbatch/internal/dbx"
	"github.com/tidemill/haulbatch/internal/server/repositories/accounts"
	"github.com/tidemill/haulbatch/internal/server/repositories/binding"
	"github.com/tidemill/haulbatch/internal/server/repositories/params"
	"github.com/tidemill/haulbatch/internal/server/repositories/settlements"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Binding(db dbx.DBTX) binding.Repository
	Params(db dbx.DBTX) params.Repository
	Settlements(db dbx.DBTX) settlements.Repository
}
