package fn

import "sync"

// Memoize caches f's results by argument. Safe for concurrent use; each
// distinct argument invokes f exactly once.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	var mu sync.Mutex
	cache := make(map[K]V)

	return func(k K) V {
		mu.Lock()
		defer mu.Unlock()

		if v, ok := cache[k]; ok {
			return v
		}
		v := f(k)
		cache[k] = v
		return v
	}
}

// MemoizeKeyed caches f's results under a caller-derived key, typically a
// canonical serialization of the argument. Two arguments producing the same
// key share one cache entry even if they are not otherwise equal.
func MemoizeKeyed[A any, K comparable, V any](f func(A) V, key func(A) K) func(A) V {
	var mu sync.Mutex
	cache := make(map[K]V)

	return func(a A) V {
		k := key(a)

		mu.Lock()
		defer mu.Unlock()

		if v, ok := cache[k]; ok {
			return v
		}
		v := f(a)
		cache[k] = v
		return v
	}
}

// Once wraps f so it executes at most once, however many goroutines call
// the returned function; later calls get the cached value and error.
func Once[T any](f func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = f()
		})
		return val, err
	}
}
