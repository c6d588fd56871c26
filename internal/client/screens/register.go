package screens

import (
	"context"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/validation"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

// RegisterScreen collects the registration form over two steps. The
// non-secret fields are saved as a draft after every change so an
// interrupted registration can be resumed.
type RegisterScreen struct {
	base
	auth   services.AuthService
	drafts services.DraftService
	log    logging.Logger

	mu    sync.Mutex
	draft services.RegistrationDraft

	State *result.Holder[Done]
}

// NewRegisterScreen reloads any saved draft.
func NewRegisterScreen(ctx context.Context, auth services.AuthService, drafts services.DraftService, log logging.Logger) (*RegisterScreen, error) {
	d, err := drafts.LoadRegistration(ctx)
	if err != nil {
		return nil, err
	}
	s := &RegisterScreen{
		base:   newBase(),
		auth:   auth,
		drafts: drafts,
		log:    log,
		draft:  d,
		State:  result.NewHolder[Done](),
	}
	s.onDispose(s.State.Close)
	return s, nil
}

func (s *RegisterScreen) Name() string { return "register" }

func (s *RegisterScreen) Draft() services.RegistrationDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UpdateDraft replaces the non-empty fields of the draft and persists it.
func (s *RegisterScreen) UpdateDraft(ctx context.Context, d services.RegistrationDraft) error {
	s.mu.Lock()
	if d.Email != "" {
		s.draft.Email = d.Email
	}
	if d.FullName != "" {
		s.draft.FullName = d.FullName
	}
	if d.BirthDate != "" {
		s.draft.BirthDate = d.BirthDate
	}
	if d.IdentityType != "" {
		s.draft.IdentityType = d.IdentityType
	}
	cur := s.draft
	s.mu.Unlock()

	return s.drafts.SaveRegistration(ctx, cur)
}

func (s *RegisterScreen) ClearDraft(ctx context.Context) error {
	s.mu.Lock()
	s.draft = services.RegistrationDraft{}
	s.mu.Unlock()
	return s.drafts.ClearRegistration(ctx)
}

// Register submits the draft together with the password pair. On success
// the draft is cleared; the account exists and the token is stored by then,
// so a failure to clear it is only logged.
func (s *RegisterScreen) Register(ctx context.Context, password, confirm string) result.Result[Done] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	d := s.Draft()
	return result.Track(ctx, s.State, func(ctx context.Context) (Done, error) {
		err := s.auth.Register(ctx, validation.Registration{
			Email:           d.Email,
			FullName:        d.FullName,
			BirthDate:       d.BirthDate,
			IdentityType:    d.IdentityType,
			Password:        password,
			PasswordConfirm: confirm,
		})
		if err != nil {
			return Done{}, err
		}
		if err := s.ClearDraft(ctx); err != nil {
			s.log.Warn(ctx, "clear registration draft", "err", err)
		}
		return Done{}, nil
	}, Message)
}
