// Package server initializes and runs the auth server: it loads config,
// selects the credential store backend, wires the token codec, and starts the
// HTTP API with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jcruzdev/ipnavigator/internal/logging"
	"github.com/jcruzdev/ipnavigator/internal/server/accounts"
	"github.com/jcruzdev/ipnavigator/internal/server/auth"
	"github.com/jcruzdev/ipnavigator/internal/server/config"
	"github.com/jcruzdev/ipnavigator/internal/server/httpapi"
	"github.com/jcruzdev/ipnavigator/internal/server/identity"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *accounts.Service
	codec    auth.Codec
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, err := newIdentityRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	var codec auth.Codec
	if cfg.SignedTokens {
		codec = auth.NewSignedCodec([]byte(cfg.SecretKey))
	} else {
		codec = auth.NewLegacyCodec()
	}

	svc := accounts.NewService(repo, codec)

	return &App{config: cfg, logger: logger, accounts: svc, codec: codec}, nil
}

// newIdentityRepository picks the Postgres store when a DSN is configured,
// otherwise the seeded in-memory store. Both end up seeded with the same
// stock account.
func newIdentityRepository(ctx context.Context, cfg *config.Config) (identity.Repository, error) {
	if cfg.DatabaseDSN == "" {
		return identity.NewMemoryRepository(identity.DefaultSeeds(), cfg.BcryptCost)
	}

	db, err := identity.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := identity.EnsureSeeds(ctx, db, identity.DefaultSeeds(), cfg.BcryptCost); err != nil {
		return nil, err
	}
	return identity.NewPostgresRepository(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.accounts, app.codec, app.config.SignedTokens)

	if err := s.Run(ctx); err != nil {
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
}
