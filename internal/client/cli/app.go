// Package cli implements the interactive IP Navigator client: login against
// the auth server, IP lookups on a map provider, and a durable, deduplicated
// lookup history with multi-select deletion.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/jcruzdev/ipnavigator/internal/client/api"
	"github.com/jcruzdev/ipnavigator/internal/client/config"
	"github.com/jcruzdev/ipnavigator/internal/client/geo"
	"github.com/jcruzdev/ipnavigator/internal/client/history"
	"github.com/jcruzdev/ipnavigator/internal/client/lookup"
	"github.com/jcruzdev/ipnavigator/internal/client/selection"
	"github.com/jcruzdev/ipnavigator/internal/client/session"
	"github.com/jcruzdev/ipnavigator/internal/client/state"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	api       *api.Client
	sessions  *session.Store
	history   *history.Store
	selection *selection.State
	lookups   *lookup.Orchestrator
	notices   *lookup.Notices
	reader    *bufio.Reader
	out       io.Writer

	// current is the active session, nil when logged out. Hydrated from the
	// persisted "user" blob at startup so a restart keeps the user signed in.
	current *api.LoginResult

	deleteMode   bool
	lastLocation *geo.Location
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	db, err := state.InitDatabase(ctx, c.StateDir)
	if err != nil {
		logger.Error(ctx, "error initializing state database", "error", err.Error())
		return nil, err
	}
	repo := state.NewSQLiteRepository(db)

	geoClient, err := newGeoClient(c)
	if err != nil {
		return nil, err
	}

	hist := history.NewStore(ctx, repo, logger)
	sessions := session.NewStore(repo, logger)

	app := &App{
		config:    c,
		logger:    logger,
		api:       api.NewClient(c.ServerAddr, c.LookupTimeout),
		sessions:  sessions,
		history:   hist,
		selection: selection.New(),
		lookups:   lookup.NewOrchestrator(geoClient, hist, logger),
		notices:   lookup.NewNotices(),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	if result, ok := sessions.Load(ctx); ok {
		app.current = result
	}

	return app, nil
}

// newGeoClient picks the offline MMDB reader when a database path is
// configured, otherwise the online provider.
func newGeoClient(c *config.Config) (geo.Client, error) {
	if c.GeoDatabase != "" {
		return geo.NewMMDBClient(c.GeoDatabase)
	}
	return geo.NewHTTPClient(c.GeoEndpoint, c.LookupTimeout), nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "logged out"
	}
	if a.deleteMode {
		return a.current.User.Name + " [delete mode]"
	}
	return a.current.User.Name
}
