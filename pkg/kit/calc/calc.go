package calc

import (
	"errors"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

var ErrNegativeDecimals = errors.New("decimals must not be negative")

// Clamp constrains v to [lo, hi]; reversed bounds are tolerated.
func Clamp[T Number](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b; t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// Remap translates v from the range [inLo, inHi] to [outLo, outHi]. An
// empty input range (inLo == inHi) has no defined mapping: the result is
// ±Inf, or NaN when v equals the collapsed bound.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, decimals int) (float64, error) {
	if decimals < 0 {
		return 0, ErrNegativeDecimals
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p, nil
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ApproxEqual reports whether a and b differ by no more than eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Frac returns the fractional part of v, keeping its sign.
func Frac(v float64) float64 {
	return v - math.Trunc(v)
}

func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Average returns the arithmetic mean, or NaN for an empty sequence.
func Average[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return float64(Sum(xs)) / float64(len(xs))
}

// Median returns the middle value of the sorted sequence (the mean of the
// two middle values for even lengths), or NaN for an empty sequence. The
// input is left unsorted.
func Median[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(xs))
	for i, x := range xs {
		sorted[i] = float64(x)
	}
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev returns the sample standard deviation (N-1 denominator), or NaN
// when fewer than two values are given.
func StdDev[T Number](xs []T) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}

	mean := Average(xs)
	var ss float64
	for _, x := range xs {
		d := float64(x) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// GCD returns the greatest common divisor of a and b; GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b; zero when either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}
