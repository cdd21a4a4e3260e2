// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires the service layer,
// handles graceful shutdown, and starts the HTTP API.
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

	"github.com/krishnapriya5647/smart-asset-system/internal/logging"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/config"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/httpapi"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/services"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgres()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	avatars := storage.NewAvatarStore(c)

	us := services.NewUserService(db, rm, avatars, c)
	if err := us.EnsureAdmin(ctx, c.AdminUserName, c.AdminEmail, c.AdminPassword); err != nil {
		return nil, fmt.Errorf("admin seed error: %w", err)
	}
	as := services.NewAssetService(db, rm)
	is := services.NewInventoryService(db, rm)
	gs := services.NewAssignmentService(db, rm)
	ts := services.NewTicketService(db, rm)
	ns := services.NewNotificationService(db, rm)
	ds := services.NewDashboardService(db, rm)

	server := httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, c.SecretKey, us, as, is, gs, ts, ns, ds)

	return &App{config: c, logger: logger, db: db, server: server}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
