package countdown

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and real-time delays so the countdown
// loop can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock implements Clock using the time package.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// EndInstant adds seconds to start, failing with ErrTimeOverflow when the
// result cannot be represented.
func EndInstant(start time.Time, seconds uint32) (time.Time, error) {
	d := time.Duration(seconds) * time.Second
	end := start.Add(d)
	// Round(0) drops the monotonic reading so the wall clock is checked.
	if end.Round(0).Sub(start.Round(0)) != d {
		return time.Time{}, ErrTimeOverflow
	}
	return end, nil
}
