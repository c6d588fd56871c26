package screens

import (
	"context"
	"sync"
)

// Screen is what the router needs from every view-state holder.
type Screen interface {
	Name() string
	// Dispose cancels in-flight requests and stops publishing. It is safe
	// to call more than once.
	Dispose()
}

// Done is the payload of actions that only succeed or fail.
type Done struct{}

// base ties a screen's requests to its lifetime.
type base struct {
	ctx    context.Context
	cancel context.CancelFunc

	once    sync.Once
	closers []func()
}

func newBase() base {
	ctx, cancel := context.WithCancel(context.Background())
	return base{ctx: ctx, cancel: cancel}
}

// onDispose registers fn to run on Dispose, after the context is cancelled.
func (b *base) onDispose(fn func()) {
	b.closers = append(b.closers, fn)
}

func (b *base) Dispose() {
	b.once.Do(func() {
		b.cancel()
		for _, fn := range b.closers {
			fn()
		}
	})
}

// Disposed reports whether Dispose has run.
func (b *base) Disposed() bool {
	return b.ctx.Err() != nil
}

// bind derives a context that ends with either ctx or the screen.
func (b *base) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(b.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
