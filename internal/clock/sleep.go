// Package clock provides context-aware time helpers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext pauses for d, returning early with the context error if
// ctx is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
