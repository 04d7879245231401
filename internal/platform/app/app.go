package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/peakprep/platform/internal/platform/ai"
	httpapi "github.com/peakprep/platform/internal/platform/http"
	"github.com/peakprep/platform/internal/platform/identity"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/internal/platform/store/drivers/redis"
	"github.com/peakprep/platform/internal/platform/store/drivers/sqlite"
	"github.com/peakprep/platform/pkg/jwtx"
	"github.com/peakprep/platform/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the platform service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          store.Store
	rateWindows store.RateWindows
	redisClient *goredis.Client
	signer      *jwtx.Signer
	idp         identity.Provider

	inviteService    *service.InviteService
	provisionService *service.ProvisionService
	leadService      *service.LeadService
	aiLimit          *service.RateLimitService
	leadLimit        *service.RateLimitService
	housekeeper      *service.Housekeeper

	server *http.Server
	router *httpapi.Router
}

// New creates an Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "platform",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.initRateWindows()

	signer, err := jwtx.NewEphemeralSigner(cfg.Issuer, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeeper.Start(slogx.WithContext(context.Background(), app.logger))

	app.logger.Info("platform starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down platform...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeeper.Stop()

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("platform stopped")
	return nil
}

// initDatabase opens the store and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// initRateWindows picks where rate counters live. With Redis configured the
// counters are shared across replicas; otherwise they ride in SQLite, which
// still survives restarts.
func (app *Application) initRateWindows() {
	if app.cfg.RedisAddr == "" {
		app.rateWindows = app.db.RateWindows()
		return
	}

	app.redisClient = goredis.NewClient(&goredis.Options{Addr: app.cfg.RedisAddr})
	app.rateWindows = redis.NewRateWindows(app.redisClient)
	app.logger.Info("rate counters backed by redis", "addr", app.cfg.RedisAddr)
}

func (app *Application) initServices() {
	app.idp = identity.NewLocalProvider(app.db)

	app.inviteService = service.NewInviteService(app.db, app.cfg.BaseURL)
	app.provisionService = service.NewProvisionService(app.db, app.idp)
	app.leadService = service.NewLeadService(app.db)
	app.aiLimit = service.NewRateLimitService(app.rateWindows, service.RatePolicy{
		MaxRequests: app.cfg.AIRateMax,
		Window:      app.cfg.AIRateWindow,
	})
	app.leadLimit = service.NewRateLimitService(app.rateWindows, service.RatePolicy{
		MaxRequests: app.cfg.LeadRateMax,
		Window:      app.cfg.LeadRateWindow,
	})
	app.housekeeper = service.NewHousekeeper(app.db, app.cfg.HousekeepingInterval)
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(
		app.signer,
		app.cfg.TokenTTL,
		BuildVersion,
		app.db,
		app.idp,
		ai.StaticCompleter{},
		app.logger,
	)
	app.router.InviteService = app.inviteService
	app.router.ProvisionService = app.provisionService
	app.router.LeadService = app.leadService
	app.router.AILimit = app.aiLimit
	app.router.LeadLimit = app.leadLimit
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
