// Package server initializes and runs the identification server.
// It picks storage backends from configuration, applies schema
// migrations, handles graceful shutdown and starts the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sonarauth/internal/group"
	"github.com/dmitrijs2005/sonarauth/internal/logging"
	"github.com/dmitrijs2005/sonarauth/internal/server/config"
	"github.com/dmitrijs2005/sonarauth/internal/server/engine"
	"github.com/dmitrijs2005/sonarauth/internal/server/ledger"
	"github.com/dmitrijs2005/sonarauth/internal/server/migrations"
	"github.com/dmitrijs2005/sonarauth/internal/server/registry"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/sonarauth/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	engine *engine.Service
	db     *sql.DB
	sweep  *ledger.InMemoryLedger
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	app := &App{config: c, logger: logger}

	reg, err := app.initRegistry(context.Background())
	if err != nil {
		return nil, fmt.Errorf("registry init error: %w", err)
	}

	led := app.initLedger()

	app.engine = engine.NewService(reg, led, group.NewSecp256k1(), logger, c)

	return app, nil
}

// initRegistry opens the PostgreSQL registry and applies migrations, or
// falls back to the in-memory registry when no DSN is configured.
func (app *App) initRegistry(ctx context.Context) (registry.Repository, error) {

	if app.config.DatabaseDSN == "" {
		app.logger.Info(ctx, "Using in-memory identity registry")
		return registry.NewInMemoryRepository(), nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app.db = db
	return registry.NewPostgresRepository(db), nil
}

// initLedger returns the Redis-backed challenge ledger, or the in-memory
// one (with its periodic sweep) when no Redis address is configured.
func (app *App) initLedger() ledger.Ledger {

	if app.config.RedisAddr == "" {
		app.logger.Info(context.Background(), "Using in-memory challenge ledger")
		mem := ledger.NewInMemoryLedger()
		app.sweep = mem
		return mem
	}

	client := redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	return ledger.NewRedisLedger(client)
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.engine)

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

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	if app.sweep != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.sweep.Run(ctx, app.config.SweepInterval)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

}
