package is

import (
	"context"
	"errors"
	"fmt"
)

// AssertionError reports a value that failed a type assertion. Got names the
// detected dynamic type, Want the asserted one.
type AssertionError struct {
	Got  string
	Want string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("asserted %s, detected %s", e.Want, e.Got)
}

// As asserts that v holds a T and returns it, or an *AssertionError naming
// the detected type.
func As[T any](v interface{}) (T, error) {
	t, ok := v.(T)
	if !ok {
		var want T
		return want, &AssertionError{Got: fmt.Sprintf("%T", v), Want: fmt.Sprintf("%T", want)}
	}
	return t, nil
}

// MustAs is As for places where a failed assertion is a programmer error.
func MustAs[T any](v interface{}) T {
	t, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return t
}

// Errors flattens err into its joined parts, or wraps a single error into a
// one-element slice. A nil error yields an empty slice.
func Errors(err error) []error {
	if Nil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func Cancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
