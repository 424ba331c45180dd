package spsc

// Consumer is the reading half of a Ring: the only handle allowed to
// advance head and drain slots. At most one live Consumer may be bound to
// a ring at a time. A Consumer is not safe for concurrent use by multiple
// goroutines.
type Consumer[T any] struct {
	ring *Ring[T]
}

// NewConsumer binds a new Consumer to r. If another Consumer is still
// bound, it spins until that handle calls Release; it never fails and
// never times out.
func NewConsumer[T any](r *Ring[T], opts ...Option) *Consumer[T] {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	for !r.hasConsumer.CompareAndSwap(false, true) {
		o.wait()
	}

	return &Consumer[T]{ring: r}
}

// Release unbinds the Consumer so a later one may bind. It must be the
// last call on the handle.
func (c *Consumer[T]) Release() {
	c.ring.hasConsumer.Store(false)
}

// Size returns the number of elements currently in the ring. The tail load
// observes every slot the producer filled before its latest Push.
func (c *Consumer[T]) Size() int {
	return c.ring.occupied()
}

// Empty reports whether the ring holds no elements. Pop must not be called
// while Empty returns true.
func (c *Consumer[T]) Empty() bool {
	return c.Size() == 0
}

// Capacity returns the number of elements the ring can hold.
func (c *Consumer[T]) Capacity() int {
	return c.ring.Capacity()
}

// Front returns a pointer to the oldest element, or nil when the ring is
// empty. The pointer is valid only until the next Pop; once consumed, the
// slot may be reused by a later Push.
func (c *Consumer[T]) Front() *T {
	head := c.ring.head.Load()
	tail := c.ring.tail.Load()
	if head == tail {
		return nil
	}
	return &c.ring.data[head]
}

// Pop removes and returns the oldest element, then publishes the new head
// so the freed slot is visible to the producer's next Size or Push.
//
// The caller must have confirmed Empty() is false. Popping an empty ring
// returns a stale value and moves head past tail, corrupting the occupancy
// count; use TryPop for the checked variant.
func (c *Consumer[T]) Pop() T {
	head := c.ring.head.Load()
	v := c.ring.data[head]

	var zero T
	c.ring.data[head] = zero // drop the slot's reference for GC

	c.ring.head.Store((head + 1) % int64(len(c.ring.data)))
	return v
}

// TryPop pops the oldest element unless the ring is empty, in which case
// it returns ErrEmpty.
func (c *Consumer[T]) TryPop() (T, error) {
	if c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return c.Pop(), nil
}
