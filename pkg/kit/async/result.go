package async

import (
	"time"

	"github.com/google/uuid"
)

// Result is the settled outcome of one asynchronous operation: either a
// value or an error, never both. Each Result carries a unique id and its
// settlement time so callers can correlate it with observer callbacks.
type Result[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	err       error
}

func Settle[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func SettleErr[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) SettledAt() time.Time {
	return r.settledAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
