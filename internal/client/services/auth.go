package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/client/validation"
)

// AuthService defines authentication operations.
//
// Contract:
//   - Login/Register: validate locally, call the backend once, persist the
//     returned bearer token.
//   - Logout: drop the token and the password change verification token.
//   - Subject: the account name carried by the stored token, or "".
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, r validation.Registration) error
	Logout(ctx context.Context) error
	Subject(ctx context.Context) string
}

type authService struct {
	client api.Client
	store  session.Store
}

func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := validation.Login(email, password); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, api.LoginRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return a.saveToken(ctx, resp)
}

func (a *authService) Register(ctx context.Context, r validation.Registration) error {
	if err := validation.Register(r); err != nil {
		return err
	}
	birthDate, err := validation.BirthDate(r.BirthDate)
	if err != nil {
		return err
	}
	identity, err := validation.IdentityType(r.IdentityType)
	if err != nil {
		return err
	}

	resp, err := a.client.Register(ctx, api.RegisterRequest{
		Email:           strings.TrimSpace(r.Email),
		FullName:        strings.TrimSpace(r.FullName),
		BirthDate:       birthDate,
		IdentityType:    identity,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	})
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return a.saveToken(ctx, resp)
}

func (a *authService) saveToken(ctx context.Context, resp *api.AuthResponse) error {
	if resp == nil || resp.AccessToken == "" {
		return api.ErrEmptyBody
	}
	if err := a.store.SetToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return errors.Join(
		a.store.ClearToken(ctx),
		a.store.Delete(ctx, session.KeyVerificationToken),
	)
}

func (a *authService) Subject(ctx context.Context) string {
	token, err := a.store.Token(ctx)
	if err != nil || token == "" {
		return ""
	}
	sub, err := session.Subject(token)
	if err != nil {
		return ""
	}
	return sub
}
