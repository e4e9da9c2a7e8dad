package clock

import (
	"context"
	"time"
)

// NowMillis returns the current UTC time in epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

// NowSeconds returns the current UTC time in epoch seconds.
func NowSeconds() int64 {
	return time.Now().UTC().Unix()
}

func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}

func Seconds(d time.Duration) float64 {
	return d.Seconds()
}

func FromMillis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func FromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Sleep suspends for d or until ctx is done, whichever comes first. It
// returns ctx.Err() when the wait was cut short.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Stopwatch measures time elapsed since its creation using the monotonic
// clock.
type Stopwatch struct {
	start time.Time
}

func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

func (s Stopwatch) StartedAt() time.Time {
	return s.start
}
