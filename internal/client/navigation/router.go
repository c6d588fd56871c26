// Package navigation owns the live screen. The router picks the start
// destination from the session validator and disposes a screen before the
// next one is built.
package navigation

import (
	"context"
	"fmt"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/screens"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

type Destination string

const (
	Login       Destination = "login"
	Register    Destination = "register"
	Home        Destination = "home"
	Profile     Destination = "profile"
	EditProfile Destination = "edit_profile"
	Security    Destination = "security"
	JBI         Destination = "jbi"
	Forum       Destination = "forum"
)

// Factory builds the screen for one destination.
type Factory func(ctx context.Context) (screens.Screen, error)

// Validator is the start-up credential check.
type Validator interface {
	Validate(ctx context.Context) (session.State, error)
}

type Router struct {
	validator Validator
	factories map[Destination]Factory
	log       logging.Logger

	mu      sync.Mutex
	dest    Destination
	current screens.Screen
}

func NewRouter(validator Validator, factories map[Destination]Factory, log logging.Logger) *Router {
	return &Router{validator: validator, factories: factories, log: log}
}

// Start validates the stored credential once and opens Home when it is
// accepted, Login otherwise.
func (r *Router) Start(ctx context.Context) (Destination, error) {
	state, err := r.validator.Validate(ctx)
	if err != nil {
		return "", fmt.Errorf("validate session: %w", err)
	}

	dest := Login
	if state == session.Valid {
		dest = Home
	}
	r.log.Info(ctx, "session checked", "state", state.String(), "destination", string(dest))

	if _, err := r.Open(ctx, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Open disposes the current screen and builds the one for dest. When the
// factory fails the router is left without a screen.
func (r *Router) Open(ctx context.Context, dest Destination) (screens.Screen, error) {
	factory, ok := r.factories[dest]
	if !ok {
		return nil, fmt.Errorf("unknown destination %q", dest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		r.current.Dispose()
		r.current, r.dest = nil, ""
	}

	s, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dest, err)
	}
	r.current, r.dest = s, dest
	r.log.Debug(ctx, "screen opened", "destination", string(dest))
	return s, nil
}

// Current returns the live screen, or nil before Start and after Close.
func (r *Router) Current() (Destination, screens.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dest, r.current
}

// Close disposes the live screen.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		r.current.Dispose()
		r.current, r.dest = nil, ""
	}
}

// Services are the dependencies the screens are built from.
type Services struct {
	Auth         services.AuthService
	Users        services.UserService
	Drafts       services.DraftService
	Translations services.TranslationService
	Forum        services.ForumService
	Log          logging.Logger
}

// Factories wires every destination to its screen constructor.
func Factories(s Services) map[Destination]Factory {
	return map[Destination]Factory{
		Login: func(context.Context) (screens.Screen, error) {
			return screens.NewLoginScreen(s.Auth), nil
		},
		Register: func(ctx context.Context) (screens.Screen, error) {
			return screens.NewRegisterScreen(ctx, s.Auth, s.Drafts, s.Log)
		},
		Home: func(context.Context) (screens.Screen, error) {
			return screens.NewHomeScreen(s.Users), nil
		},
		Profile: func(context.Context) (screens.Screen, error) {
			return screens.NewProfileScreen(s.Users, s.Auth), nil
		},
		EditProfile: func(context.Context) (screens.Screen, error) {
			return screens.NewEditProfileScreen(s.Users, s.Drafts, s.Log), nil
		},
		Security: func(context.Context) (screens.Screen, error) {
			return screens.NewSecurityScreen(s.Users), nil
		},
		JBI: func(context.Context) (screens.Screen, error) {
			return screens.NewJBIScreen(s.Translations), nil
		},
		Forum: func(context.Context) (screens.Screen, error) {
			return screens.NewForumScreen(s.Forum), nil
		},
	}
}
