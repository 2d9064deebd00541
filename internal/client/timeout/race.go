// Package timeout bounds outbound calls with a timer.
package timeout

import (
	"context"
	"time"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

type result[T any] struct {
	val T
	err error
}

// Race runs fn and returns whichever finishes first: fn or a timer of d.
// When the timer wins, Race returns a *common.NetworkError with Timeout set,
// cancels the context handed to fn, and discards fn's eventual result.
// Cancellation of ctx itself is reported as ctx.Err().
func Race[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so a late fn never blocks after Race has returned.
	done := make(chan result[T], 1)
	go func() {
		v, err := fn(callCtx)
		done <- result[T]{val: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case r := <-done:
		return r.val, r.err
	case <-timer.C:
		return zero, common.NewTimeoutError()
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
