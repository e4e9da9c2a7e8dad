package is

import (
	"net/url"
	"reflect"
	"time"

	"golang.org/x/exp/constraints"
)

// Nil reports whether v is nil, including typed nil pointers, maps, slices,
// channels, functions and interfaces hiding behind a non-nil interface value.
func Nil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func NotNil(v interface{}) bool {
	return !Nil(v)
}

// Zero reports whether v equals the zero value of its type.
func Zero[T comparable](v T) bool {
	var zero T
	return v == zero
}

// Empty reports whether v has no elements: nil values, empty strings,
// and zero-length slices, arrays, maps and channels are empty. Any other
// kind is not.
func Empty(v interface{}) bool {
	if Nil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return false
}

func Even[T constraints.Integer](n T) bool {
	return n%2 == 0
}

func Odd[T constraints.Integer](n T) bool {
	return n%2 != 0
}

func Positive[T constraints.Integer | constraints.Float](n T) bool {
	return n > 0
}

func Negative[T constraints.Integer | constraints.Float](n T) bool {
	return n < 0
}

// Past reports whether t is strictly before the current wall-clock time.
func Past(t time.Time) bool {
	return t.Before(time.Now())
}

// Future reports whether t is strictly after the current wall-clock time.
func Future(t time.Time) bool {
	return t.After(time.Now())
}

// URL reports whether s parses as an absolute URL with a scheme and a host.
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// PlainMap reports whether v is a map with string keys, the shape produced
// by decoding JSON objects into interface{} values.
func PlainMap(v interface{}) bool {
	if Nil(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}
