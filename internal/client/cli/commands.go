package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/navigation"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/screens"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/validation"
)

// getSimpleText, getDefaultText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getDefaultText = GetDefaultText
	getPassword    = GetPassword
)

// open returns the live screen for dest, building it when another screen is
// showing. reuse keeps an already open screen of the same destination.
func open[T screens.Screen](ctx context.Context, r *navigation.Router, dest navigation.Destination, reuse bool) (T, error) {
	if reuse {
		if cur, s := r.Current(); cur == dest {
			if typed, ok := s.(T); ok {
				return typed, nil
			}
		}
	}
	s, err := r.Open(ctx, dest)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := s.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("screen %s has unexpected type %T", dest, s)
	}
	return typed, nil
}

func (a *App) Login(ctx context.Context) error {
	s, err := open[*screens.LoginScreen](ctx, a.router, navigation.Login, false)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	r := s.Login(ctx, email, password)
	printlnFn(renderResult(r, renderDone("Login successful")))
	if r.Status() != result.StatusSucceeded {
		return nil
	}
	return a.Home(ctx)
}

// Register walks through the two registration steps. Every answer is saved
// to the draft before the next prompt, so an interrupted registration
// resumes where it stopped.
func (a *App) Register(ctx context.Context) error {
	s, err := open[*screens.RegisterScreen](ctx, a.router, navigation.Register, false)
	if err != nil {
		return err
	}

	d := s.Draft()
	if !d.IsEmpty() {
		printlnFn(styleMuted.Render("Resuming saved registration, press Enter to keep a value"))
	}

	steps := []struct {
		prompt string
		cur    string
		set    func(v string) services.RegistrationDraft
	}{
		{"Email", d.Email, func(v string) services.RegistrationDraft { return services.RegistrationDraft{Email: v} }},
		{"Full name", d.FullName, func(v string) services.RegistrationDraft { return services.RegistrationDraft{FullName: v} }},
		{"Birth date (DD/MM/YYYY)", d.BirthDate, func(v string) services.RegistrationDraft { return services.RegistrationDraft{BirthDate: v} }},
		{"Identity (tuli/dengar)", d.IdentityType, func(v string) services.RegistrationDraft { return services.RegistrationDraft{IdentityType: v} }},
	}
	for _, st := range steps {
		v, err := getDefaultText(a.reader, st.prompt, st.cur, a.out)
		if err != nil {
			return err
		}
		if err := s.UpdateDraft(ctx, st.set(v)); err != nil {
			return err
		}
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	r := s.Register(ctx, password, confirm)
	printlnFn(renderResult(r, renderDone("Registration successful")))
	if r.Status() != result.StatusSucceeded {
		return nil
	}
	return a.Home(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	if _, err := a.router.Open(ctx, navigation.Login); err != nil {
		return err
	}
	printlnFn(styleSuccess.Render("Logged out"))
	return nil
}

func (a *App) Home(ctx context.Context) error {
	s, err := open[*screens.HomeScreen](ctx, a.router, navigation.Home, false)
	if err != nil {
		return err
	}
	printlnFn(renderResult(s.Load(ctx), renderGreeting))
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	s, err := open[*screens.ProfileScreen](ctx, a.router, navigation.Profile, false)
	if err != nil {
		return err
	}
	printlnFn(renderResult(s.Load(ctx), renderProfile))
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	s, err := open[*screens.EditProfileScreen](ctx, a.router, navigation.EditProfile, false)
	if err != nil {
		return err
	}

	if r := s.Load(ctx); r.Status() != result.StatusSucceeded {
		printlnFn(renderResult(r, renderProfile))
		return nil
	}

	f := s.Form()
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &f.FullName},
		{"Birth date (DD/MM/YYYY)", &f.BirthDate},
		{"Institution", &f.Institution},
		{"Profile picture URL", &f.ProfilePictureURL},
	}
	for _, fl := range fields {
		v, err := getDefaultText(a.reader, fl.prompt, *fl.dst, a.out)
		if err != nil {
			return err
		}
		*fl.dst = v
	}
	s.SetForm(f)

	if !s.HasUnsavedChanges() {
		printlnFn(styleMuted.Render("No changes"))
		return nil
	}
	if !s.FormValid() {
		msg := validation.MsgBirthDateBlank
		if strings.TrimSpace(f.FullName) == "" {
			msg = validation.MsgFullNameBlank
		}
		printlnFn(styleError.Render("Error: " + msg))
		return nil
	}

	printlnFn(renderResult(s.Submit(ctx), func(*api.UserProfile) string {
		return styleSuccess.Render("Profile updated")
	}))
	return nil
}

func (a *App) Password(ctx context.Context) error {
	s, err := open[*screens.SecurityScreen](ctx, a.router, navigation.Security, false)
	if err != nil {
		return err
	}

	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	if r := s.VerifyPassword(ctx, current); r.Status() != result.StatusSucceeded {
		printlnFn(renderResult(r, renderDone("")))
		return nil
	}

	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}

	printlnFn(renderResult(s.ChangePassword(ctx, newPassword, confirm), func(msg string) string {
		if msg == "" {
			msg = "Password changed"
		}
		return styleSuccess.Render(msg)
	}))
	return nil
}

func (a *App) jbiScreen(ctx context.Context) (*screens.JBIScreen, error) {
	s, err := open[*screens.JBIScreen](ctx, a.router, navigation.JBI, true)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Translators.Get().Value(); !ok {
		s.LoadTranslators(ctx)
	}
	return s, nil
}

func (a *App) JBI(ctx context.Context, query string) error {
	s, err := a.jbiScreen(ctx)
	if err != nil {
		return err
	}
	s.SelectTab(ctx, screens.TabTranslators)
	s.SetQuery(query)

	printlnFn(renderResult(s.Translators.Get(), func([]api.Translator) string {
		return renderTranslators(s.FilteredTranslators())
	}))
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	s, err := a.jbiScreen(ctx)
	if err != nil {
		return err
	}
	s.SelectTab(ctx, screens.TabOrders)
	printlnFn(renderResult(s.Orders.Get(), renderOrders))
	return nil
}

func (a *App) forumScreen(ctx context.Context) (*screens.ForumScreen, error) {
	s, err := open[*screens.ForumScreen](ctx, a.router, navigation.Forum, true)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Posts.Get().Value(); !ok {
		s.Load(ctx)
	}
	return s, nil
}

func (a *App) Forum(ctx context.Context, query string) error {
	s, err := a.forumScreen(ctx)
	if err != nil {
		return err
	}
	s.SetQuery(query)
	a.printForum(s)
	return nil
}

func (a *App) Topic(ctx context.Context, topic string) error {
	s, err := a.forumScreen(ctx)
	if err != nil {
		return err
	}
	s.SetTopic(topic)
	if topics := s.Topics(); len(topics) > 0 {
		printlnFn(styleMuted.Render(fmt.Sprintf("Topics: %v", topics)))
	}
	a.printForum(s)
	return nil
}

func (a *App) printForum(s *screens.ForumScreen) {
	printlnFn(renderResult(s.Posts.Get(), func([]api.ForumPost) string {
		return renderPosts(s.Filtered())
	}))
}
