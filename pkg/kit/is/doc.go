// Package is provides small boolean predicates over single values and the
// assertion helpers built on them.
//
// Highlights:
// - Nil/NotNil/Zero/Empty: nil-ness and emptiness, including typed nils
// - Even/Odd/Positive/Negative: numeric classification
// - Past/Future: instants relative to the current wall clock
// - URL: well-formed absolute URL strings
// - As/MustAs: type assertions failing with the detected type named
// - Errors/Cancellation: unwrap joined errors, classify context failures
//
// All predicates are deterministic except Past and Future, which read the
// wall clock.
package is
