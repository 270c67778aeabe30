package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/aliaa11/userboard/internal/api"
	"github.com/aliaa11/userboard/internal/config"
	"github.com/aliaa11/userboard/internal/logging"
	"github.com/aliaa11/userboard/internal/models"
	"github.com/aliaa11/userboard/internal/session"
)

// sessionState is the slice of session.Manager the commands rely on.
// Tests substitute a stub.
type sessionState interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	CurrentUser() *models.User
	Loading() bool
}

// App is the interactive client: API access, session state, and the
// dashboard list state, driven by a line-based REPL.
type App struct {
	config  *config.Config
	api     api.Client
	session sessionState
	dash    *dashboard
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
}

// NewApp wires the client together: opens the local session database, builds
// the HTTP API client against the configured base URL, and prepares the
// session manager.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open client database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	store := session.NewSQLiteTokenStore(db)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, store, log)
	sess := session.NewManager(store, apiClient, log)

	return &App{
		config:  cfg,
		api:     apiClient,
		session: sess,
		dash:    newDashboard(apiClient),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the stored session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Init(ctx); err != nil {
		a.log.Warn(ctx, "session init failed", "error", err)
	}
	if user := a.session.CurrentUser(); user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	}

	printlnFn("userboard CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the client database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

// status renders the prompt suffix, e.g. "(ada@example.com admin)".
func (a *App) status() string {
	user := a.session.CurrentUser()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}
