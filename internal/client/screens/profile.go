package screens

import (
	"context"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
)

// HomeScreen shows the greeting and points of the signed-in user.
type HomeScreen struct {
	base
	users   services.UserService
	Profile *result.Holder[*api.UserProfile]
}

func NewHomeScreen(users services.UserService) *HomeScreen {
	s := &HomeScreen{base: newBase(), users: users, Profile: result.NewHolder[*api.UserProfile]()}
	s.onDispose(s.Profile.Close)
	return s
}

func (s *HomeScreen) Name() string { return "home" }

func (s *HomeScreen) Load(ctx context.Context) result.Result[*api.UserProfile] {
	ctx, cancel := s.bind(ctx)
	defer cancel()
	return result.Track(ctx, s.Profile, s.users.Profile, Message)
}

// ProfileScreen shows the profile and offers logout.
type ProfileScreen struct {
	base
	users   services.UserService
	auth    services.AuthService
	Profile *result.Holder[*api.UserProfile]
}

func NewProfileScreen(users services.UserService, auth services.AuthService) *ProfileScreen {
	s := &ProfileScreen{base: newBase(), users: users, auth: auth, Profile: result.NewHolder[*api.UserProfile]()}
	s.onDispose(s.Profile.Close)
	return s
}

func (s *ProfileScreen) Name() string { return "profile" }

func (s *ProfileScreen) Load(ctx context.Context) result.Result[*api.UserProfile] {
	ctx, cancel := s.bind(ctx)
	defer cancel()
	return result.Track(ctx, s.Profile, s.users.Profile, Message)
}

func (s *ProfileScreen) Logout(ctx context.Context) error {
	return s.auth.Logout(ctx)
}
