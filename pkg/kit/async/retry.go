package async

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Observer is notified after every failed attempt with the normalized
// failure and the 1-based attempt number.
type Observer func(ctx context.Context, err error, attempt int)

var ErrNoAttempts = errors.New("attempts must be positive")

// Retry invokes op up to attempts times, waiting delay between attempts.
// The delay is skipped after the final attempt. Attempts are numbered from 1.
// When every attempt fails, the last observed failure is returned.
//
// A panic inside op is recovered and converted into an error carrying its
// textual representation, so the observer and the returned failure always
// have a uniform shape. Cancellation during the wait returns ctx.Err()
// joined with the last attempt's failure.
func Retry[T any](ctx context.Context, attempts int, delay time.Duration,
	op func(ctx context.Context) (T, error), observe Observer) (T, error) {

	var zero T

	if attempts <= 0 {
		return zero, ErrNoAttempts
	}

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {

		v, err := invoke(ctx, op)
		if err == nil {
			return v, nil
		}

		last = err
		if observe != nil {
			observe(ctx, err, attempt)
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return zero, errors.Join(last, ctx.Err())
		case <-time.After(delay):
		}
	}

	return zero, last
}

func invoke[T any](ctx context.Context, op func(ctx context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	return op(ctx)
}
