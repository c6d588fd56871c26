package screens

import (
	"context"

	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
)

type LoginScreen struct {
	base
	auth  services.AuthService
	State *result.Holder[Done]
}

func NewLoginScreen(auth services.AuthService) *LoginScreen {
	s := &LoginScreen{base: newBase(), auth: auth, State: result.NewHolder[Done]()}
	s.onDispose(s.State.Close)
	return s
}

func (s *LoginScreen) Name() string { return "login" }

func (s *LoginScreen) Login(ctx context.Context, email, password string) result.Result[Done] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	return result.Track(ctx, s.State, func(ctx context.Context) (Done, error) {
		return Done{}, s.auth.Login(ctx, email, password)
	}, Message)
}
