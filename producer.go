package spsc

// Producer is the writing half of a Ring: the only handle allowed to
// advance tail and fill slots. At most one live Producer may be bound to a
// ring at a time. A Producer is not safe for concurrent use by multiple
// goroutines.
type Producer[T any] struct {
	ring *Ring[T]
}

// NewProducer binds a new Producer to r. If another Producer is still
// bound, it spins until that handle calls Release; it never fails and
// never times out.
func NewProducer[T any](r *Ring[T], opts ...Option) *Producer[T] {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	for !r.hasProducer.CompareAndSwap(false, true) {
		o.wait()
	}

	return &Producer[T]{ring: r}
}

// Release unbinds the Producer so a later one may bind. It must be the
// last call on the handle.
func (p *Producer[T]) Release() {
	p.ring.hasProducer.Store(false)
}

// Size returns the number of elements currently in the ring. The head load
// observes everything the consumer freed before its latest Pop.
func (p *Producer[T]) Size() int {
	return p.ring.occupied()
}

// Full reports whether the ring is at capacity. Push must not be called
// while Full returns true.
func (p *Producer[T]) Full() bool {
	return p.Size() == p.ring.Capacity()
}

// Capacity returns the number of elements the ring can hold.
func (p *Producer[T]) Capacity() int {
	return p.ring.Capacity()
}

// Push writes v into the next slot, then publishes the new tail so the
// value is visible to the consumer's next Size or Pop.
//
// The caller must have confirmed Full() is false. Pushing into a full ring
// silently overwrites the slot the consumer has not yet read; use TryPush
// for the checked variant.
func (p *Producer[T]) Push(v T) {
	tail := p.ring.tail.Load()
	p.ring.data[tail] = v
	p.ring.tail.Store((tail + 1) % int64(len(p.ring.data)))
}

// TryPush pushes v unless the ring is full, in which case it returns
// ErrFull and leaves the ring untouched.
func (p *Producer[T]) TryPush(v T) error {
	if p.Full() {
		return ErrFull
	}
	p.Push(v)
	return nil
}
