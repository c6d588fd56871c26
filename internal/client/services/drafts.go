package services

import (
	"context"
	"fmt"

	"github.com/ARKNravi/Gelatik/internal/client/session"
)

// RegistrationDraft is the non-secret part of the registration form that
// survives restarts. Passwords are never part of it.
type RegistrationDraft struct {
	Email        string
	FullName     string
	BirthDate    string
	IdentityType string
}

func (d RegistrationDraft) IsEmpty() bool {
	return d == RegistrationDraft{}
}

// DraftService persists in-progress form data.
type DraftService interface {
	LoadRegistration(ctx context.Context) (RegistrationDraft, error)
	SaveRegistration(ctx context.Context, d RegistrationDraft) error
	ClearRegistration(ctx context.Context) error

	SnapshotProfile(ctx context.Context, f ProfileForm) error
	// LoadProfileSnapshot reports ok=false when no snapshot exists.
	LoadProfileSnapshot(ctx context.Context) (f ProfileForm, ok bool, err error)
	ClearProfileSnapshot(ctx context.Context) error
}

type draftService struct {
	store session.Store
}

func NewDraftService(store session.Store) DraftService {
	return &draftService{store: store}
}

func (s *draftService) LoadRegistration(ctx context.Context) (RegistrationDraft, error) {
	var d RegistrationDraft
	fields := map[string]*string{
		session.KeyRegEmail:     &d.Email,
		session.KeyRegFullName:  &d.FullName,
		session.KeyRegBirthDate: &d.BirthDate,
		session.KeyRegIdentity:  &d.IdentityType,
	}
	if err := s.load(ctx, fields); err != nil {
		return RegistrationDraft{}, fmt.Errorf("load registration draft: %w", err)
	}
	return d, nil
}

func (s *draftService) SaveRegistration(ctx context.Context, d RegistrationDraft) error {
	err := s.store.SetMany(ctx, map[string]string{
		session.KeyRegEmail:     d.Email,
		session.KeyRegFullName:  d.FullName,
		session.KeyRegBirthDate: d.BirthDate,
		session.KeyRegIdentity:  d.IdentityType,
	})
	if err != nil {
		return fmt.Errorf("save registration draft: %w", err)
	}
	return nil
}

func (s *draftService) ClearRegistration(ctx context.Context) error {
	return s.store.Delete(ctx, session.RegistrationKeys...)
}

func (s *draftService) SnapshotProfile(ctx context.Context, f ProfileForm) error {
	err := s.store.SetMany(ctx, map[string]string{
		session.KeyProfileFullName:    f.FullName,
		session.KeyProfileBirthDate:   f.BirthDate,
		session.KeyProfileIdentity:    f.IdentityType,
		session.KeyProfileInstitution: f.Institution,
		session.KeyProfilePictureURL:  f.ProfilePictureURL,
	})
	if err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}

func (s *draftService) LoadProfileSnapshot(ctx context.Context) (ProfileForm, bool, error) {
	if _, ok, err := s.store.Get(ctx, session.KeyProfileFullName); err != nil || !ok {
		return ProfileForm{}, false, err
	}

	var f ProfileForm
	fields := map[string]*string{
		session.KeyProfileFullName:    &f.FullName,
		session.KeyProfileBirthDate:   &f.BirthDate,
		session.KeyProfileIdentity:    &f.IdentityType,
		session.KeyProfileInstitution: &f.Institution,
		session.KeyProfilePictureURL:  &f.ProfilePictureURL,
	}
	if err := s.load(ctx, fields); err != nil {
		return ProfileForm{}, false, fmt.Errorf("load profile snapshot: %w", err)
	}
	return f, true, nil
}

func (s *draftService) ClearProfileSnapshot(ctx context.Context) error {
	return s.store.DeletePrefix(ctx, session.ProfilePrefix)
}

func (s *draftService) load(ctx context.Context, fields map[string]*string) error {
	for key, dst := range fields {
		v, _, err := s.store.Get(ctx, key)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}
