package timer

import (
	"context"
	"fmt"
	"time"
)

// Overtime replaces a countdown once elapsed time has passed its total.
const Overtime = "OVERTIME!"

// Format renders d as HH:MM:SS using whole seconds. Hours do not wrap.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Remaining returns total-elapsed floored at zero, and whether elapsed has
// run past total.
func Remaining(elapsed, total time.Duration) (time.Duration, bool) {
	if elapsed > total {
		return 0, true
	}
	return total - elapsed, false
}

// Countdown is Format of the remaining time, or Overtime.
func Countdown(elapsed, total time.Duration) string {
	remaining, over := Remaining(elapsed, total)
	if over {
		return Overtime
	}
	return Format(remaining)
}

// Sleeper paces the playback loop.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
