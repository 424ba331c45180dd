package spsc

import (
	"time"
)

// Poller will poll a Consumer until a value is available.
type Poller[T any] struct {
	*Consumer[T]
	interval time.Duration
}

// PollerConfigOption can be used to setup the poller.
type PollerConfigOption[T any] func(*Poller[T])

// WithPollingInterval sets the interval at which the ring is queried for
// new data. The default is 10ms.
func WithPollingInterval[T any](interval time.Duration) PollerConfigOption[T] {
	return func(p *Poller[T]) {
		p.interval = interval
	}
}

// NewPoller wraps a bound Consumer to allow accessing data via polling.
func NewPoller[T any](c *Consumer[T], opts ...PollerConfigOption[T]) *Poller[T] {
	p := &Poller[T]{
		Consumer: c,
		interval: 10 * time.Millisecond,
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Next polls the ring until data is available.
func (p *Poller[T]) Next() T {
	for {
		v, err := p.TryPop()
		if err != nil {
			time.Sleep(p.interval)
			continue
		}
		return v
	}
}
