// Package server wires the geoportal application together: it opens the
// credential and geometry stores, optionally migrates them, builds the
// services and runs the HTTP server until a termination signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/geoportal/internal/logging"
	"github.com/dmitrijs2005/geoportal/internal/server/config"
	"github.com/dmitrijs2005/geoportal/internal/server/httpapi"
	"github.com/dmitrijs2005/geoportal/internal/server/migrations"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/geoportal/internal/server/services"
	"github.com/dmitrijs2005/geoportal/internal/server/storage"
	"github.com/gin-gonic/gin"
)

const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	credentials *storage.Store
	geometries  *storage.Store
	repomanager repomanager.RepositoryManager
	server      *httpapi.HTTPServer
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	credentials, err := storage.Open("users", c.CredentialsDSN(), c.DBMaxIdleConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	geometries, err := storage.Open("geometry", c.GeometryDSN(), c.DBMaxIdleConns)
	if err != nil {
		_ = credentials.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	as := services.NewAuthService(credentials, rm, c.DecoyCost)
	gs := services.NewGeometryService(geometries, rm)

	return &App{
		config:      c,
		logger:      logger,
		credentials: credentials,
		geometries:  geometries,
		repomanager: rm,
		server:      httpapi.NewHTTPServer(c.EndpointAddrHTTP, c.AllowedOrigin, logger, as, gs),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// migrate applies the embedded schema of each database to it.
func (app *App) migrate(ctx context.Context) error {
	for _, m := range []struct {
		store *storage.Store
		dir   string
	}{
		{app.credentials, migrations.UsersDir},
		{app.geometries, migrations.GeometriesDir},
	} {
		app.logger.Info(ctx, "Applying migrations", "db", m.store.Name())
		if err := app.repomanager.RunMigrations(ctx, m.store.DB(), m.dir); err != nil {
			return fmt.Errorf("%s: migrations: %w", m.store.Name(), err)
		}
	}
	return nil
}

// checkStores pings both databases once. Requests open their own
// connections, so an unreachable database is reported but not fatal.
func (app *App) checkStores(ctx context.Context) {
	for _, s := range []*storage.Store{app.credentials, app.geometries} {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := s.Ping(pingCtx)
		cancel()
		if err != nil {
			app.logger.Warn(ctx, "Database is not reachable", "db", s.Name(), "error", err)
			continue
		}
		app.logger.Info(ctx, "Database is reachable", "db", s.Name())
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

func (app *App) close(ctx context.Context) {
	for _, s := range []*storage.Store{app.credentials, app.geometries} {
		if err := s.Close(); err != nil {
			app.logger.Error(ctx, "Closing database", "db", s.Name(), "error", err)
		}
	}
}

// Run blocks until ctx is cancelled, a termination signal is received or
// the HTTP server fails. The stores are closed before it returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close(context.WithoutCancel(ctx))

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	if app.config.RunMigrations {
		if err := app.migrate(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			return err
		}
	}

	app.checkStores(ctx)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return nil
}
