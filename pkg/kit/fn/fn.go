package fn

// Pipe2 composes left to right: Pipe2(f, g)(x) is g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Pipe2(Pipe2(f, g), h)
}

func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return Pipe2(Pipe3(f, g, h), i)
}

// Compose2 composes right to left: Compose2(g, f)(x) is g(f(x)).
func Compose2[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return Pipe2(f, g)
}

func Compose3[A, B, C, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return Pipe3(f, g, h)
}

func Compose4[A, B, C, D, E any](i func(D) E, h func(C) D, g func(B) C, f func(A) B) func(A) E {
	return Pipe4(f, g, h, i)
}

// Try chains two fallible steps; the second runs only when the first
// succeeds, and the first failure short-circuits.
func Try[A, B, C any](f func(A) (B, error), g func(B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(b)
	}
}

// Tap runs a side effect on the value and passes it through unchanged.
func Tap[T any](effect func(T)) func(T) T {
	return func(t T) T {
		effect(t)
		return t
	}
}

// Curry2 turns a two-argument function into a chain of single-argument
// ones; arity is fixed at compile time by the type parameters.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}
