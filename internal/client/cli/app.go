package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/client/client"
	"github.com/dmitrijs2005/moodkeeper/internal/client/config"
	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/client/services"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
)

// authenticator is the part of services.AuthService the CLI uses.
type authenticator interface {
	services.UserFinder
	Register(ctx context.Context, email, username string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
}

// sessionKeeper is the part of services.SessionManager the CLI uses.
type sessionKeeper interface {
	Start(ctx context.Context, userID string) error
	RequireValid(ctx context.Context, users services.UserFinder) (*models.User, error)
	End(ctx context.Context) error
}

// entryStore is the part of services.EntryService the CLI uses.
type entryStore interface {
	Load(ctx context.Context, userID string) ([]models.CheckInEntry, error)
	Record(ctx context.Context, userID string, entries []models.CheckInEntry, entry models.CheckInEntry) ([]models.CheckInEntry, error)
	Remove(ctx context.Context, userID string, entries []models.CheckInEntry, id string) ([]models.CheckInEntry, error)
	Clear(ctx context.Context, userID string) error
	Query(entries []models.CheckInEntry, pred func(models.CheckInEntry) bool) iter.Seq[models.CheckInEntry]
}

// App is the interactive client. It keeps the signed-in user and that
// user's entries in memory between commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	auth     authenticator
	sessions sessionKeeper
	entries  entryStore

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
	alerts *alertBox
	close  func() error

	user    *models.User
	journal []models.CheckInEntry
}

// NewApp opens the configured storage backend and builds the services on
// top of it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, closeStore, err := client.OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	app, err := newApp(cfg, log,
		services.NewAuthService(store, log.With("component", "auth")),
		services.NewSessionManager(store, log.With("component", "session")),
		services.NewEntryService(store, log.With("component", "entries")),
		bufio.NewReader(os.Stdin), os.Stdout,
	)
	if err != nil {
		_ = closeStore()
		return nil, err
	}
	app.close = closeStore
	return app, nil
}

// newApp assembles an App from its parts. Any missing part is a wiring
// fault reported as common.ErrMissingElement.
func newApp(cfg *config.Config, log logging.Logger, auth authenticator, sessions sessionKeeper, entries entryStore, in *bufio.Reader, out io.Writer) (*App, error) {
	parts := []struct {
		name string
		ok   bool
	}{
		{"config", cfg != nil},
		{"logger", log != nil},
		{"auth service", auth != nil},
		{"session manager", sessions != nil},
		{"entry service", entries != nil},
		{"input", in != nil},
		{"output", out != nil},
	}
	for _, p := range parts {
		if !p.ok {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingElement, p.name)
		}
	}

	return &App{
		config:   cfg,
		log:      log,
		auth:     auth,
		sessions: sessions,
		entries:  entries,
		reader:   in,
		out:      out,
		now:      time.Now,
		alerts:   newAlertBox(cfg.AlertTimeout, out),
	}, nil
}

// Run restores the session, if any, and serves the REPL until the user
// exits or ctx is cancelled. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.close != nil {
			if err := a.close(); err != nil {
				a.log.Warn(ctx, "closing storage", "error", err)
			}
		}
	}()

	fmt.Fprintln(a.out, "Welcome to MoodKeeper (type 'help' for commands)")

	u, err := a.sessions.RequireValid(ctx, a.auth)
	switch {
	case err == nil:
		if err := a.signIn(ctx, u, false); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Welcome back, %s.\n", u.Username)
	case errors.Is(err, common.ErrUnauthenticated):
		a.redirectToLogin()
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	return runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status is the prompt decoration: the signed-in user and any alert that
// is still on screen.
func (a *App) status() string {
	s := "moodkeeper"
	if a.user != nil {
		s += " (" + a.user.Username + ")"
	}
	if msg := a.alerts.current(); msg != "" {
		s += " [" + msg + "]"
	}
	return s
}

// signIn makes u the current user and loads their entries. When start is
// set a new session is persisted first.
func (a *App) signIn(ctx context.Context, u *models.User, start bool) error {
	if start {
		if err := a.sessions.Start(ctx, u.ID); err != nil {
			return err
		}
	}
	journal, err := a.entries.Load(ctx, u.ID)
	if err != nil {
		return err
	}
	a.user, a.journal = u, journal
	return nil
}

// signOut forgets the current user without touching the persisted session.
func (a *App) signOut() {
	a.user, a.journal = nil, nil
}

// requireUser re-validates the session before a command that needs an
// identity. On failure the user is sent back to the login flow and ok is
// false.
func (a *App) requireUser(ctx context.Context) (u *models.User, ok bool, err error) {
	u, err = a.sessions.RequireValid(ctx, a.auth)
	if errors.Is(err, common.ErrUnauthenticated) {
		a.signOut()
		a.redirectToLogin()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, a.report(ctx, err)
	}
	if a.user == nil || a.user.ID != u.ID {
		if err := a.signIn(ctx, u, false); err != nil {
			return nil, false, a.report(ctx, err)
		}
	}
	return u, true, nil
}

// redirectToLogin is shown whenever there is no valid session.
func (a *App) redirectToLogin() {
	a.printQuote()
	fmt.Fprintln(a.out, "Log in with 'login' or create an account with 'register'.")
}
