// Package commands implements the warehousectl subcommands. Every command
// runs against an App wired once in NewApp: config, logger, session store
// (initialized from the persisted token), guard and API client.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/api"
	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/config"
	"github.com/shahidulislam-dev/warehouse-console/internal/guard"
	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
	"github.com/shahidulislam-dev/warehouse-console/internal/session"
)

// Globals holds top-level CLI flags.
type Globals struct {
	Debug   bool
	Version string
}

// App is the wired console core shared by all commands.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Session *session.Store
	Client  *api.Client
	Guard   *guard.Guard
	Out     io.Writer
}

// NewApp loads config, restores the persisted session and builds the API
// client. A token close to expiry earns a warning up front.
func NewApp(globals *Globals) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Logger.Level
	if globals.Debug {
		level = "debug"
	}
	logger, err := observability.NewLogger(level)
	if err != nil {
		return nil, err
	}

	storage, err := session.NewFileStorage(cfg.Session.TokenPath)
	if err != nil {
		return nil, err
	}
	store := session.NewStore(storage, logger)
	if err := store.Initialize(); err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Session: store,
		Guard:   guard.New(store, nil),
		Out:     os.Stdout,
	}
	app.Client = api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Session: store,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
		Timeout: cfg.API.Timeout(),
		OnSessionInvalid: func(loginRoute string) {
			fmt.Fprintf(os.Stderr, "Session ended by the server; log in again (%s)\n", loginRoute)
		},
	})

	now := time.Now()
	if store.IsAuthenticated(now) && store.ExpiresSoon(now, cfg.Session.ExpiryWarnWindow()) {
		fmt.Fprintln(os.Stderr, "Warning: your session expires soon, consider logging in again")
	}

	return app, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.Logger.Sync()
}

// requireFeature rejects the command locally when the current role lacks the
// feature. Advisory only: the server enforces the real rules.
func (a *App) requireFeature(feature auth.Feature) error {
	role := a.Session.CurrentRole()
	if !auth.HasFeatureAccess(role, feature) {
		return fmt.Errorf("your role %q does not have access to %s", role, feature)
	}
	return nil
}

func (a *App) requireDelete() error {
	if !auth.CanDeleteEntities(a.Session.CurrentRole()) {
		return fmt.Errorf("delete operations require an admin role")
	}
	return nil
}
