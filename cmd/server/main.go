package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"aromaforge/internal/catalog"
	"aromaforge/internal/config"
	"aromaforge/internal/db"
	"aromaforge/internal/db/mock"
	"aromaforge/internal/engine"
	applog "aromaforge/internal/log"
	"aromaforge/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

// Seams for the run loop so the wiring can be exercised without sockets or a
// real database.
var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	loadLibraryFunc     = loadLibrary
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		return sigCh, func() { signal.Stop(sigCh) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}
	defer func() { _ = applog.Sync() }()

	library, err := loadLibraryFunc(cfg.Catalog)
	if err != nil {
		applog.Error(ctx, "failed to load material catalog", "error", err)
		return 1
	}

	var database *gorm.DB
	switch {
	case cfg.Database.UseMock:
		database, err = newMockDatabaseFunc(ctx)
		if err != nil {
			applog.Error(ctx, "failed to initialise mock database", "error", err)
			return 1
		}
		applog.Info(ctx, "using in-memory mock database")
	case cfg.Database.URL != "":
		database, err = configureDatabase(cfg.Database)
		if err != nil {
			applog.Error(ctx, "failed to configure database", "error", err)
			return 1
		}
	default:
		applog.Info(ctx, "no database configured; accounts and saved blends are disabled")
	}

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Auth.Session.Lifetime,
			CookieName:   cfg.Auth.Session.CookieName,
			CookieDomain: cfg.Auth.Session.CookieDomain,
			CookieSecure: cfg.Auth.Session.CookieSecure,
		},
		Database: database,
		Engine:   engine.New(library),
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	sigCh, cancelSignals := subscribeShutdownSig()
	defer cancelSignals()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
	case sig := <-sigCh:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
		if err := srv.Stop(); err != nil {
			applog.Error(ctx, "graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func loadLibrary(cfg config.CatalogConfig) (*catalog.Library, error) {
	if cfg.OverlayPath == "" {
		return catalog.Builtin(), nil
	}
	overlay, err := catalog.LoadOverlayFile(cfg.OverlayPath)
	if err != nil {
		return nil, err
	}
	return catalog.Builtin().Merge(overlay)
}
