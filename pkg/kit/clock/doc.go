// Package clock provides time reading, unit conversion, a context-aware
// delay primitive and duration formatting.
//
// Key operations:
// - NowMillis/NowSeconds: UTC epoch readers
// - Millis/Seconds/FromMillis/FromSeconds: duration conversions
// - Sleep: suspend for a duration or until the context is done
// - Stopwatch: elapsed time since creation, monotonic
// - FormatDuration: compact ("1d 2h") or spelled-out ("1 day 2 hours")
//   rendering, zero units omitted
package clock
