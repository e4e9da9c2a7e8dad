// Package async provides bounded-concurrency and retry helpers built around
// Result[T], a settled value-or-error pair.
//
// Key operations:
// - Pool: run a worker over a task list with at most N concurrent calls,
//   outputs aligned with inputs
// - PoolSettled: like Pool but returns one Result per item without
//   short-circuiting on failure
// - Retry: re-invoke a fallible operation with a fixed delay between
//   attempts and an optional failure observer
// - Settle/SettleErr: construct Result[T]
// - ValueOr: read any WithError outcome with a fallback
//
// All helpers take a context and observe cancellation between suspension
// points; none of them cancels work that is already in flight.
package async
