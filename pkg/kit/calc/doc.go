// Package calc provides generic numeric helpers and sequence statistics.
//
// Key operations:
// - Clamp/Lerp/Remap: range constraining and interpolation
// - Round: rounding to N decimal places (negative N is a validation error)
// - Degrees/Radians/ApproxEqual/Frac: small formula helpers
// - Sum/Average/Median/StdDev: sequence statistics, sample (N-1) deviation
// - GCD/LCM: integer arithmetic
//
// Statistics over an empty sequence return math.NaN() rather than failing;
// callers wanting a hard error should check the input length first.
package calc
