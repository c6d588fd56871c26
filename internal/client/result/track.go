package result

import "context"

// Track publishes Pending on h, runs op, then publishes Succeeded or Failed
// depending on op's error. describe converts the error into the message
// carried by Failed. The published outcome is also returned.
func Track[T any](ctx context.Context, h *Holder[T], op func(ctx context.Context) (T, error), describe func(error) string) Result[T] {
	h.Publish(Pending[T]())

	v, err := op(ctx)

	var r Result[T]
	if err != nil {
		r = Failed[T](describe(err))
	} else {
		r = Succeeded(v)
	}
	h.Publish(r)
	return r
}
