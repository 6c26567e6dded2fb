// Package await adapts blocking calls for asynchronous call sites without
// introducing concurrency: the call still runs on the caller's goroutine,
// only the invocation shape changes.
package await

import (
	"context"
)

// Result pairs a call's value with its error for channel delivery.
type Result[T any] struct {
	Value T
	Err   error
}

// Call runs fn synchronously after honoring any cancellation already
// present on ctx. No goroutine is spawned; callers that need true
// preemption must arrange it themselves.
func Call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return fn()
}

// Resolved runs fn synchronously and returns a buffered channel already
// carrying its result, so select-based call sites can consume a blocking
// call uniformly with genuinely asynchronous ones.
func Resolved[T any](fn func() (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	value, err := fn()
	out <- Result[T]{Value: value, Err: err}
	close(out)
	return out
}
