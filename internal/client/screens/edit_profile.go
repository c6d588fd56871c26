package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

// EditProfileScreen edits the profile form against a persisted snapshot of
// the last saved values. The snapshot is removed on Dispose.
type EditProfileScreen struct {
	base
	users  services.UserService
	drafts services.DraftService
	log    logging.Logger

	mu       sync.Mutex
	form     services.ProfileForm
	snapshot services.ProfileForm

	Profile *result.Holder[*api.UserProfile]
	Save    *result.Holder[*api.UserProfile]
}

func NewEditProfileScreen(users services.UserService, drafts services.DraftService, log logging.Logger) *EditProfileScreen {
	s := &EditProfileScreen{
		base:    newBase(),
		users:   users,
		drafts:  drafts,
		log:     log,
		Profile: result.NewHolder[*api.UserProfile](),
		Save:    result.NewHolder[*api.UserProfile](),
	}
	s.onDispose(s.Profile.Close)
	s.onDispose(s.Save.Close)
	s.onDispose(func() {
		if err := drafts.ClearProfileSnapshot(context.Background()); err != nil {
			log.Warn(context.Background(), "clear profile snapshot", "err", err)
		}
	})
	return s
}

func (s *EditProfileScreen) Name() string { return "edit_profile" }

// Load fetches the profile and makes it both the form and the snapshot.
func (s *EditProfileScreen) Load(ctx context.Context) result.Result[*api.UserProfile] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	return result.Track(ctx, s.Profile, func(ctx context.Context) (*api.UserProfile, error) {
		p, err := s.users.Profile(ctx)
		if err != nil {
			return nil, err
		}
		s.resetTo(ctx, services.FormFromProfile(p))
		return p, nil
	}, Message)
}

func (s *EditProfileScreen) resetTo(ctx context.Context, f services.ProfileForm) {
	s.mu.Lock()
	s.form = f
	s.snapshot = f
	s.mu.Unlock()

	if err := s.drafts.SnapshotProfile(ctx, f); err != nil {
		s.log.Warn(ctx, "save profile snapshot", "err", err)
	}
}

func (s *EditProfileScreen) Form() services.ProfileForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *EditProfileScreen) SetForm(f services.ProfileForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

func (s *EditProfileScreen) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form != s.snapshot
}

// FormValid requires a full name and a birth date.
func (s *EditProfileScreen) FormValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.TrimSpace(s.form.FullName) != "" && strings.TrimSpace(s.form.BirthDate) != ""
}

// Submit sends the current form. On success the saved values become the
// new snapshot.
func (s *EditProfileScreen) Submit(ctx context.Context) result.Result[*api.UserProfile] {
	ctx, cancel := s.bind(ctx)
	defer cancel()

	form := s.Form()
	return result.Track(ctx, s.Save, func(ctx context.Context) (*api.UserProfile, error) {
		p, err := s.users.UpdateProfile(ctx, form)
		if err != nil {
			return nil, err
		}
		saved := services.FormFromProfile(p)
		// Fields the server does not echo keep the submitted value.
		if saved.IdentityType == "" {
			saved.IdentityType = form.IdentityType
		}
		if saved.ProfilePictureURL == "" {
			saved.ProfilePictureURL = form.ProfilePictureURL
		}
		s.resetTo(ctx, saved)
		return p, nil
	}, Message)
}
