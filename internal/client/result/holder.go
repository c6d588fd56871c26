package result

import "sync"

// Holder keeps the current Result of one view-state slot and fans changes
// out to subscribers. Writes are last-write-wins; nothing orders concurrent
// publishers.
//
// Subscribers receive the most recent Result only: a slow reader that
// misses intermediate transitions sees the latest one on its next receive.
type Holder[T any] struct {
	mu     sync.Mutex
	cur    Result[T]
	subs   map[int]chan Result[T]
	nextID int
	closed bool
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{subs: make(map[int]chan Result[T])}
}

// Publish replaces the current Result. It is a no-op after Close.
func (h *Holder[T]) Publish(r Result[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.cur = r
	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- r
	}
}

// Get returns the current Result. It is the zero Result until the first
// Publish.
func (h *Holder[T]) Get() Result[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur
}

// Reset returns the slot to the zero Result without notifying subscribers.
func (h *Holder[T]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = Result[T]{}
}

// Subscribe returns a channel carrying every subsequent Result and a
// function that unsubscribes. The channel is closed on unsubscribe or Close.
// If a Result has already been published it is delivered immediately.
func (h *Holder[T]) Subscribe() (<-chan Result[T], func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Result[T], 1)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if !h.cur.IsZero() {
		ch <- h.cur
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

// Close drops all subscribers. Later Publish calls are ignored; Get keeps
// returning the last Result.
func (h *Holder[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
