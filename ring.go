package spsc

import (
	"sync/atomic"
)

// Ring is a fixed-capacity circular buffer shared by exactly one Producer
// and one Consumer. It owns the storage and the two cursor indices but has
// no mutating operations of its own; all pushes and pops go through the
// bound handles.
type Ring[T any] struct {
	// data holds one slot more than the usable capacity. The spare slot
	// lets head == tail mean "empty" without a separate count.
	data []T

	head atomic.Int64 // index of the oldest element, advanced only by the consumer
	tail atomic.Int64 // index of the next free slot, advanced only by the producer

	hasProducer atomic.Bool
	hasConsumer atomic.Bool
}

// New creates a ring buffer that holds up to size elements. It returns
// ErrInvalidCapacity when size is not positive.
func New[T any](size int) (*Ring[T], error) {
	if size <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Ring[T]{
		data: make([]T, size+1),
	}, nil
}

// Capacity returns the number of elements the ring can hold.
func (r *Ring[T]) Capacity() int {
	return len(r.data) - 1
}

// occupied is the number of elements between the two cursors. Both loads
// are atomic, so either role may call it; each handle documents which
// cursor it reads for the other role's latest writes.
func (r *Ring[T]) occupied() int {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail >= head {
		return int(tail - head)
	}
	return int(tail + int64(len(r.data)) - head)
}
