// Package server initializes and runs the batcher server. It opens the
// database, applies migrations, seeds the vault binding on first start,
// connects to the hauler node, and serves the gRPC API until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tidemill/haulbatch/internal/logging"
	"github.com/tidemill/haulbatch/internal/server/auth"
	"github.com/tidemill/haulbatch/internal/server/config"
	"github.com/tidemill/haulbatch/internal/server/hauler"
	"github.com/tidemill/haulbatch/internal/server/repositories/repomanager"
	"github.com/tidemill/haulbatch/internal/server/services"

	gs "github.com/tidemill/haulbatch/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	node              *hauler.GRPCNode
	ledgerService     *services.LedgerService
	settlementService *services.SettlementService
	adminService      *services.AdminService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	node, err := hauler.NewGRPCNode(c.HaulerAddrGRPC, c.VaultID)
	if err != nil {
		return nil, err
	}

	gate, err := auth.NewGate(c.ReplayCacheSize)
	if err != nil {
		return nil, err
	}

	var archiver services.ReportArchiver
	if c.S3ArchiveEnabled {
		archiver = services.NewS3Archiver(c, logger)
	}

	guard := services.NewOpGuard()

	ls := services.NewLedgerService(db, rm, gate, node, guard, c, logger)
	ss := services.NewSettlementService(db, rm, node, guard, archiver, c, logger)
	as := services.NewAdminService(db, rm, node, guard, c, logger)

	return &App{
		config:            c,
		logger:            logger,
		db:                db,
		node:              node,
		ledgerService:     ls,
		settlementService: ss,
		adminService:      as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.ledgerService, app.settlementService, app.adminService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	if err := app.adminService.Bootstrap(ctx, app.config); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.node.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
