package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/client/client"
	"github.com/dmitrijs2005/mindmate/internal/client/config"
	"github.com/dmitrijs2005/mindmate/internal/client/state"
	"github.com/dmitrijs2005/mindmate/internal/client/store"
	"github.com/dmitrijs2005/mindmate/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	api    client.Client
	auth   *state.AuthController
	data   *state.AppController
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the Persisted Store, restores the saved user and binds the
// app state to it.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	s, db, err := store.Open(ctx, c.StorePath)
	if err != nil {
		l.Error(ctx, "error opening store", "path", c.StorePath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerEndpointAddr, c.Collection, c.RequestTimeout)
	a := newApp(ctx, c, l, api, s)
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, l logging.Logger, api client.Client, s store.Store) *App {
	auth := state.NewAuthController(api, s, c.AppName, l)
	auth.Bootstrap(ctx)
	data := state.NewAppController(auth, s, c.AppName, l)

	return &App{
		config: c,
		logger: l.With("module", "cli"),
		api:    api,
		auth:   auth,
		data:   data,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}
}

// Run starts the REPL and releases the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	printlnFn("Welcome to MindMate (type 'help' for commands)")
	a.checkServer(ctx)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) close() {
	a.data.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(context.Background(), "closing store", "error", err)
		}
	}
}

// checkServer warns once when the Auth Endpoint cannot be reached. Guests
// can still track moods and habits.
func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "server unavailable", "addr", a.config.ServerEndpointAddr, "error", err)
		printlnFn(fmt.Sprintf("Server %s is unavailable; login will not work until it is back.", a.config.ServerEndpointAddr))
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().IsAuthenticated
}

// status is the prompt label: the signed-in email or "guest".
func (a *App) status() string {
	if u := a.auth.State().User; u != nil {
		return u.Email
	}
	return "guest"
}
