package screens

import (
	"context"

	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
)

// SecurityScreen runs the two-step password change: verify the current
// password, then submit the new one.
type SecurityScreen struct {
	base
	users  services.UserService
	Verify *result.Holder[Done]
	Change *result.Holder[string]
}

func NewSecurityScreen(users services.UserService) *SecurityScreen {
	s := &SecurityScreen{
		base:   newBase(),
		users:  users,
		Verify: result.NewHolder[Done](),
		Change: result.NewHolder[string](),
	}
	s.onDispose(s.Verify.Close)
	s.onDispose(s.Change.Close)
	return s
}

func (s *SecurityScreen) Name() string { return "security" }

func (s *SecurityScreen) VerifyPassword(ctx context.Context, current string) result.Result[Done] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	return result.Track(ctx, s.Verify, func(ctx context.Context) (Done, error) {
		return Done{}, s.users.VerifyPassword(ctx, current)
	}, Message)
}

// ChangePassword publishes the server's confirmation message on success.
func (s *SecurityScreen) ChangePassword(ctx context.Context, newPassword, confirm string) result.Result[string] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	return result.Track(ctx, s.Change, func(ctx context.Context) (string, error) {
		return s.users.ChangePassword(ctx, newPassword, confirm)
	}, Message)
}

// Reset forgets both steps and the stored verification token.
func (s *SecurityScreen) Reset(ctx context.Context) error {
	s.Verify.Reset()
	s.Change.Reset()
	return s.users.ClearVerification(ctx)
}
