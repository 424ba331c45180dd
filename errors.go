package spsc

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the requested capacity
	// is not positive.
	ErrInvalidCapacity = errors.New("spsc: capacity must be positive")

	// ErrFull is returned by TryPush when the ring has no free slot.
	ErrFull = errors.New("spsc: ring full")

	// ErrEmpty is returned by TryPop when the ring holds no elements.
	ErrEmpty = errors.New("spsc: ring empty")
)
