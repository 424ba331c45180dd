package spsc

import (
	"runtime"
	"time"
)

type options struct {
	backoff time.Duration
}

// wait is called between bind attempts while the role latch is held by a
// previous handle.
func (o options) wait() {
	if o.backoff > 0 {
		time.Sleep(o.backoff)
		return
	}
	runtime.Gosched()
}

// Option configures how a handle binds to its ring.
type Option interface {
	apply(*options)
}

// optionFunc wraps a function that modifies options into an implementation
// of the Option interface.
type optionFunc struct {
	f func(*options)
}

func (of *optionFunc) apply(o *options) {
	of.f(o)
}

// WithBindBackoff returns an Option which makes the bind spin sleep for d
// between attempts instead of only yielding the processor. The binding
// contract is unchanged: the constructor still blocks until the previous
// handle of the role is released.
func WithBindBackoff(d time.Duration) Option {
	return &optionFunc{
		f: func(o *options) {
			o.backoff = d
		},
	}
}
