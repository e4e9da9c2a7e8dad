package async

import "time"

type ValueProvider[T any] interface {
	// Value returns the settled value
	Value() T
	// SettledAt settlement time (UTC)
	SettledAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// OK returns true if the operation succeeded
	OK() bool
}

// ValueOr returns the settled value when the outcome succeeded, fallback
// otherwise.
func ValueOr[T any](r WithError[T], fallback T) T {
	if r.OK() {
		return r.Value()
	}
	return fallback
}
