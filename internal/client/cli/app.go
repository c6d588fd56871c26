package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/config"
	"github.com/ARKNravi/Gelatik/internal/client/navigation"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/filex"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

type App struct {
	config *config.Config
	store  session.Store
	auth   services.AuthService
	router *navigation.Router
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session store selected by c.StoreDriver and wires the
// REST client, services and router on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := api.NewHTTPClient(c.BaseURL, store, c.RequestTimeout, log.With("component", "api"))
	return newApp(c, store, client, log, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, store session.Store, client api.Client, log logging.Logger, in *bufio.Reader, out io.Writer) *App {
	auth := services.NewAuthService(client, store)
	factories := navigation.Factories(navigation.Services{
		Auth:         auth,
		Users:        services.NewUserService(client, store),
		Drafts:       services.NewDraftService(store),
		Translations: services.NewTranslationService(client),
		Forum:        services.NewForumService(client),
		Log:          log,
	})
	validator := session.NewValidator(store, client, log.With("component", "session"))

	return &App{
		config: c,
		store:  store,
		auth:   auth,
		router: navigation.NewRouter(validator, factories, log),
		log:    log,
		reader: in,
		out:    out,
	}
}

func openStore(ctx context.Context, c *config.Config) (session.Store, error) {
	switch c.StoreDriver {
	case config.DriverSQLite, "":
		dir, err := filex.ExpandHome(c.DataDir)
		if err != nil {
			return nil, err
		}
		return session.OpenSQLiteStore(ctx, dir)
	case config.DriverRedis:
		return session.OpenRedisStore(ctx, c.RedisURL)
	case config.DriverMemory:
		return session.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", c.StoreDriver)
}

// Run checks the stored session, shows the start screen and runs the REPL
// until the user exits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.router.Close()
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "close session store", "err", err)
		}
	}()

	printlnFn(styleTitle.Render("StuDeaf CLI") + styleMuted.Render(" (type 'help' for commands)"))

	dest, err := a.router.Start(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	if dest == navigation.Home {
		_ = a.Home(ctx)
	} else {
		printlnFn(styleMuted.Render("Not logged in. Use 'login' or 'register'."))
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
	return nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	tok, err := a.store.Token(ctx)
	return err == nil && tok != ""
}

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if sub := a.auth.Subject(ctx); sub != "" {
		s = sub
	}
	if dest, _ := a.router.Current(); dest != "" {
		if s != "" {
			s += " "
		}
		s += string(dest)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
