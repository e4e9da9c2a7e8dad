// Package fn provides function-composition helpers.
//
// Key operations:
// - Pipe2..Pipe4: left-to-right composition
// - Compose2..Compose4: right-to-left composition
// - Try: chain fallible steps, first failure short-circuits
// - Tap: side effect that passes its value through
// - Memoize/MemoizeKeyed: argument-keyed result caching
// - Once: single-invocation caching
// - Curry2..Curry4: fixed-arity partial application
//
// The cached wrappers (Memoize, Once) are safe for concurrent use; the
// wrapped functions themselves must be pure for caching to be sound.
package fn
