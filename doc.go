// Package spsc implements a fixed-capacity lock-free ring buffer for a
// single producer goroutine and a single consumer goroutine. The two roles
// bind to a Ring through exclusive handles and synchronize only through
// atomic loads and stores of the two cursor indices; Push and Pop never
// block, never allocate, and never check their preconditions. Callers that
// want checked operations use TryPush and TryPop, and callers that want to
// sleep instead of polling wrap the handles in a Poller or a Waiter.
package spsc
