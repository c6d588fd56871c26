package session

import (
	"context"
	"sync"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

type State int

const (
	NotStarted State = iota
	Validating
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// ProfileFetcher is the one backend call the validator needs.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*api.UserProfile, error)
}

// Validator checks the stored credential once per process. Concurrent
// callers share the single in-flight check; later callers get the settled
// state without another request.
type Validator struct {
	store   Store
	profile ProfileFetcher
	log     logging.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
}

func NewValidator(store Store, profile ProfileFetcher, log logging.Logger) *Validator {
	return &Validator{
		store:   store,
		profile: profile,
		log:     log,
		done:    make(chan struct{}),
	}
}

func (v *Validator) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Validate returns Valid or Invalid. Without a stored token it settles on
// Invalid with no network call. Any failure of the profile fetch clears the
// token. When ctx ends before the check settles, the token is kept, the
// validator returns to NotStarted and ctx.Err() is returned.
func (v *Validator) Validate(ctx context.Context) (State, error) {
	for {
		v.mu.Lock()
		switch v.state {
		case Valid, Invalid:
			s := v.state
			v.mu.Unlock()
			return s, nil
		case Validating:
			done := v.done
			v.mu.Unlock()
			select {
			case <-done:
				// Settled, or abandoned by a cancelled owner: look again.
				continue
			case <-ctx.Done():
				return v.State(), ctx.Err()
			}
		}
		v.state = Validating
		done := v.done
		v.mu.Unlock()

		s, err := v.check(ctx)

		v.mu.Lock()
		if err != nil {
			v.state = NotStarted
			v.done = make(chan struct{})
		} else {
			v.state = s
		}
		v.mu.Unlock()
		close(done)
		return s, err
	}
}

func (v *Validator) check(ctx context.Context) (State, error) {
	token, err := v.store.Token(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return NotStarted, ctx.Err()
		}
		v.log.Warn(ctx, "read stored token", "err", err)
		v.clear(ctx)
		return Invalid, nil
	}
	if token == "" {
		v.log.Debug(ctx, "no stored token")
		return Invalid, nil
	}

	if _, err := v.profile.Profile(ctx); err != nil {
		if ctx.Err() != nil {
			v.log.Debug(ctx, "token check interrupted", "err", err)
			return NotStarted, ctx.Err()
		}
		v.log.Info(ctx, "stored token rejected", "err", err)
		v.clear(ctx)
		return Invalid, nil
	}

	v.log.Debug(ctx, "stored token accepted")
	return Valid, nil
}

func (v *Validator) clear(ctx context.Context) {
	if err := v.store.ClearToken(context.WithoutCancel(ctx)); err != nil {
		v.log.Error(ctx, "clear stored token", "err", err)
	}
}
