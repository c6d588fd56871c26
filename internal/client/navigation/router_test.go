package navigation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/screens"
	"github.com/ARKNravi/Gelatik/internal/client/services"
	"github.com/ARKNravi/Gelatik/internal/client/session"
	"github.com/ARKNravi/Gelatik/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a chi router standing in for the REST server.
type backend struct {
	profileStatus int
	profileCalls  atomic.Int32
}

func (b *backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/users/profile", func(w http.ResponseWriter, req *http.Request) {
		b.profileCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if req.Header.Get("Authorization") != "Bearer good" || b.profileStatus != http.StatusOK {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.UserProfile{ID: 1, FullName: "Budi"})
	})
	return r
}

func newApp(t *testing.T, b *backend, token string) (*Router, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(b.routes())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	store := session.NewMemoryStore()
	if token != "" {
		require.NoError(t, store.SetToken(ctx, token))
	}

	log := logging.Discard()
	client := api.NewHTTPClient(srv.URL, store, 5*time.Second, log)
	factories := Factories(Services{
		Auth:         services.NewAuthService(client, store),
		Users:        services.NewUserService(client, store),
		Drafts:       services.NewDraftService(store),
		Translations: services.NewTranslationService(client),
		Forum:        services.NewForumService(client),
		Log:          log,
	})
	r := NewRouter(session.NewValidator(store, client, log), factories, log)
	t.Cleanup(r.Close)
	return r, store
}

func TestStart_NoTokenGoesToLoginWithoutNetwork(t *testing.T) {
	b := &backend{profileStatus: http.StatusOK}
	r, _ := newApp(t, b, "")

	dest, err := r.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Login, dest)
	assert.Equal(t, int32(0), b.profileCalls.Load())

	cur, s := r.Current()
	assert.Equal(t, Login, cur)
	assert.IsType(t, &screens.LoginScreen{}, s)
}

func TestStart_ValidTokenGoesHome(t *testing.T) {
	b := &backend{profileStatus: http.StatusOK}
	r, store := newApp(t, b, "good")

	dest, err := r.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Home, dest)
	assert.Equal(t, int32(1), b.profileCalls.Load())

	tok, _ := store.Token(context.Background())
	assert.Equal(t, "good", tok)
}

func TestStart_RejectedTokenClearedAndLogin(t *testing.T) {
	b := &backend{profileStatus: http.StatusOK}
	r, store := newApp(t, b, "stale")

	dest, err := r.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Login, dest)
	assert.Equal(t, int32(1), b.profileCalls.Load())

	tok, _ := store.Token(context.Background())
	assert.Empty(t, tok)
}

func TestStart_UnreachableBackendIsInvalid(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.SetToken(ctx, "good"))
	log := logging.Discard()
	client := api.NewHTTPClient(url, store, time.Second, log)
	r := NewRouter(session.NewValidator(store, client, log), Factories(Services{
		Auth: services.NewAuthService(client, store),
		Log:  log,
	}), log)
	defer r.Close()

	dest, err := r.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, Login, dest)
	tok, _ := store.Token(ctx)
	assert.Empty(t, tok)
}

type fakeScreen struct {
	name     string
	disposed int
}

func (f *fakeScreen) Name() string { return f.name }
func (f *fakeScreen) Dispose()     { f.disposed++ }

type fixedValidator session.State

func (v fixedValidator) Validate(context.Context) (session.State, error) {
	return session.State(v), nil
}

func TestOpen_DisposesPrevious(t *testing.T) {
	var built []*fakeScreen
	factory := func(name string) Factory {
		return func(context.Context) (screens.Screen, error) {
			s := &fakeScreen{name: name}
			built = append(built, s)
			return s, nil
		}
	}
	r := NewRouter(fixedValidator(session.Valid), map[Destination]Factory{
		Home:  factory("home"),
		Forum: factory("forum"),
		Login: func(context.Context) (screens.Screen, error) { return nil, errors.New("broken") },
	}, logging.Discard())
	ctx := context.Background()

	dest, err := r.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, Home, dest)

	_, err = r.Open(ctx, Forum)
	require.NoError(t, err)
	require.Len(t, built, 2)
	assert.Equal(t, 1, built[0].disposed)
	assert.Equal(t, 0, built[1].disposed)

	_, err = r.Open(ctx, "nowhere")
	assert.Error(t, err)
	assert.Equal(t, 0, built[1].disposed)

	_, err = r.Open(ctx, Login)
	assert.Error(t, err)
	assert.Equal(t, 1, built[1].disposed)
	cur, s := r.Current()
	assert.Empty(t, cur)
	assert.Nil(t, s)

	_, err = r.Open(ctx, Home)
	require.NoError(t, err)
	r.Close()
	r.Close()
	assert.Equal(t, 1, built[2].disposed)
}

func TestFactories_BuildEveryDestination(t *testing.T) {
	store := session.NewMemoryStore()
	client := api.NewHTTPClient("http://127.0.0.1:0", store, time.Second, logging.Discard())
	f := Factories(Services{
		Auth:         services.NewAuthService(client, store),
		Users:        services.NewUserService(client, store),
		Drafts:       services.NewDraftService(store),
		Translations: services.NewTranslationService(client),
		Forum:        services.NewForumService(client),
		Log:          logging.Discard(),
	})

	for _, d := range []Destination{Login, Register, Home, Profile, EditProfile, Security, JBI, Forum} {
		s, err := f[d](context.Background())
		require.NoError(t, err, d)
		assert.Equal(t, string(d), s.Name())
		s.Dispose()
	}
}
