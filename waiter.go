package spsc

import (
	"context"
)

// Waiter couples the two handles of a ring so the reading goroutine can
// sleep on a channel signal until data is available, instead of polling.
// The producer goroutine calls Push and the consumer goroutine calls Next;
// neither side may share its end with other goroutines.
type Waiter[T any] struct {
	*Consumer[T]
	p   *Producer[T]
	c   chan struct{}
	ctx context.Context
}

// WaiterConfigOption can be used to setup the waiter.
type WaiterConfigOption[T any] func(*Waiter[T])

// WithWaiterContext sets the context to cancel any retrieval (Next()). It
// will not change any results for adding data (Push()). Default is
// context.Background().
func WithWaiterContext[T any](ctx context.Context) WaiterConfigOption[T] {
	return func(w *Waiter[T]) {
		w.ctx = ctx
	}
}

// NewWaiter returns a new Waiter coupling the given bound handles.
func NewWaiter[T any](p *Producer[T], c *Consumer[T], opts ...WaiterConfigOption[T]) *Waiter[T] {
	w := &Waiter[T]{
		Consumer: c,
		p:        p,
		c:        make(chan struct{}, 1),
		ctx:      context.Background(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Push pushes v through the producer handle and uses broadcast to wake up
// a waiting reader. It returns ErrFull when the ring has no free slot.
func (w *Waiter[T]) Push(v T) error {
	if err := w.p.TryPush(v); err != nil {
		return err
	}
	w.broadcast()
	return nil
}

// broadcast sends to the channel if it can.
func (w *Waiter[T]) broadcast() {
	select {
	case w.c <- struct{}{}:
	default:
	}
}

// Next returns the next value in the ring. If the ring is empty, it waits
// for Push to be called or the context to be done. If the context is done,
// the zero value and false are returned.
func (w *Waiter[T]) Next() (T, bool) {
	for {
		v, err := w.TryPop()
		if err == nil {
			return v, true
		}

		select {
		case <-w.ctx.Done():
			var zero T
			return zero, false
		case <-w.c:
		}
	}
}
