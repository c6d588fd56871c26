package screens

import (
	"context"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

// fakeAPI implements api.Client. block, when set, holds every call until it
// is closed or the context ends.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	err error

	profile     *api.UserProfile
	translators []api.Translator
	orders      []api.TranslationOrder
	posts       []api.ForumPost

	lastRegister api.RegisterRequest
	lastUpdate   api.ProfileUpdate

	block chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:   make(map[string]int),
		profile: &api.UserProfile{ID: 1, Email: "budi@example.com", FullName: "Budi", BirthDate: "2000-01-31", IdentityType: "tuli", Institution: "UI", Points: 40},
	}
}

func (f *fakeAPI) call(ctx context.Context, name string) error {
	f.mu.Lock()
	f.calls[name]++
	block, err := f.block, f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *fakeAPI) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Login(ctx context.Context, _ api.LoginRequest) (*api.AuthResponse, error) {
	if err := f.call(ctx, "login"); err != nil {
		return nil, err
	}
	return &api.AuthResponse{AccessToken: "tok"}, nil
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	if err := f.call(ctx, "register"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastRegister = req
	f.mu.Unlock()
	return &api.AuthResponse{AccessToken: "tok"}, nil
}

func (f *fakeAPI) Profile(ctx context.Context) (*api.UserProfile, error) {
	if err := f.call(ctx, "profile"); err != nil {
		return nil, err
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, req api.ProfileUpdate) (*api.UserProfile, error) {
	if err := f.call(ctx, "update_profile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = req
	f.profile.FullName = req.FullName
	f.profile.BirthDate = req.BirthDate
	f.profile.Institution = req.Institution
	p := *f.profile
	return &p, nil
}

func (f *fakeAPI) VerifyPassword(ctx context.Context, _ string) (*api.VerifyPasswordResponse, error) {
	if err := f.call(ctx, "verify_password"); err != nil {
		return nil, err
	}
	return &api.VerifyPasswordResponse{VerificationToken: "vt"}, nil
}

func (f *fakeAPI) ChangePassword(ctx context.Context, _ api.ChangePasswordRequest) (*api.ChangePasswordResponse, error) {
	if err := f.call(ctx, "change_password"); err != nil {
		return nil, err
	}
	return &api.ChangePasswordResponse{Message: "Password changed successfully"}, nil
}

func (f *fakeAPI) Translators(ctx context.Context) (*api.TranslatorList, error) {
	if err := f.call(ctx, "translators"); err != nil {
		return nil, err
	}
	return &api.TranslatorList{Items: f.translators, Total: len(f.translators)}, nil
}

func (f *fakeAPI) MyOrders(ctx context.Context) (*api.OrderList, error) {
	if err := f.call(ctx, "orders"); err != nil {
		return nil, err
	}
	return &api.OrderList{Items: f.orders, Total: len(f.orders)}, nil
}

func (f *fakeAPI) ForumPosts(ctx context.Context) ([]api.ForumPost, error) {
	if err := f.call(ctx, "posts"); err != nil {
		return nil, err
	}
	return f.posts, nil
}

type deps struct {
	api    *fakeAPI
	store  *session.MemoryStore
	auth   services.AuthService
	users  services.UserService
	drafts services.DraftService
	log    logging.Logger
}

func newDeps() *deps {
	fa := newFakeAPI()
	store := session.NewMemoryStore()
	return &deps{
		api:    fa,
		store:  store,
		auth:   services.NewAuthService(fa, store),
		users:  services.NewUserService(fa, store),
		drafts: services.NewDraftService(store),
		log:    logging.Discard(),
	}
}
