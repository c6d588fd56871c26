package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/client/validation"
)

// ProfileForm is the editable part of a profile. BirthDate is DD/MM/YYYY.
type ProfileForm struct {
	FullName          string
	BirthDate         string
	IdentityType      string
	Institution       string
	ProfilePictureURL string
}

// FormFromProfile converts a server profile into the form shape.
func FormFromProfile(p *api.UserProfile) ProfileForm {
	return ProfileForm{
		FullName:          p.FullName,
		BirthDate:         validation.DisplayDate(p.BirthDate),
		IdentityType:      p.IdentityType,
		Institution:       p.Institution,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}

// UserService covers the profile and the two-step password change.
type UserService interface {
	Profile(ctx context.Context) (*api.UserProfile, error)
	UpdateProfile(ctx context.Context, form ProfileForm) (*api.UserProfile, error)
	// VerifyPassword checks the current password and keeps the returned
	// verification token for ChangePassword.
	VerifyPassword(ctx context.Context, current string) error
	// ChangePassword returns the server's confirmation message and drops
	// the verification token on success.
	ChangePassword(ctx context.Context, newPassword, confirm string) (string, error)
	ClearVerification(ctx context.Context) error
}

type userService struct {
	client api.Client
	store  session.Store
}

func NewUserService(client api.Client, store session.Store) UserService {
	return &userService{client: client, store: store}
}

func (s *userService) Profile(ctx context.Context) (*api.UserProfile, error) {
	p, err := s.client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile error: %w", err)
	}
	return p, nil
}

func (s *userService) UpdateProfile(ctx context.Context, form ProfileForm) (*api.UserProfile, error) {
	if strings.TrimSpace(form.FullName) == "" {
		return nil, &validation.Error{Message: validation.MsgFullNameBlank}
	}
	birthDate, err := validation.BirthDate(form.BirthDate)
	if err != nil {
		return nil, err
	}

	p, err := s.client.UpdateProfile(ctx, api.ProfileUpdate{
		FullName:          strings.TrimSpace(form.FullName),
		BirthDate:         birthDate,
		Institution:       strings.TrimSpace(form.Institution),
		ProfilePictureURL: form.ProfilePictureURL,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile error: %w", err)
	}
	return p, nil
}

func (s *userService) VerifyPassword(ctx context.Context, current string) error {
	if strings.TrimSpace(current) == "" {
		return &validation.Error{Message: validation.MsgCurrentBlank}
	}

	resp, err := s.client.VerifyPassword(ctx, current)
	if err != nil {
		return fmt.Errorf("verify password error: %w", err)
	}
	if resp.VerificationToken == "" {
		return api.ErrEmptyBody
	}
	if err := s.store.Set(ctx, session.KeyVerificationToken, resp.VerificationToken); err != nil {
		return fmt.Errorf("verification token saving error: %w", err)
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, newPassword, confirm string) (string, error) {
	token, _, err := s.store.Get(ctx, session.KeyVerificationToken)
	if err != nil {
		return "", fmt.Errorf("verification token loading error: %w", err)
	}
	if err := validation.ChangePassword(newPassword, confirm, token); err != nil {
		return "", err
	}

	resp, err := s.client.ChangePassword(ctx, api.ChangePasswordRequest{
		VerificationToken:  token,
		NewPassword:        newPassword,
		NewPasswordConfirm: confirm,
	})
	if err != nil {
		return "", fmt.Errorf("change password error: %w", err)
	}

	if err := s.ClearVerification(ctx); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *userService) ClearVerification(ctx context.Context) error {
	return s.store.Delete(ctx, session.KeyVerificationToken)
}
