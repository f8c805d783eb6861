// Package guardrails holds time budgets for scan runs
package guardrails

import (
	"context"
	"time"
)

// Timeouts bounds a run; zero values add no limit at that level
type Timeouts struct {
	// Run caps the whole scan, reading and classifying included
	Run time.Duration
	// Sink caps each chunk handed to the sink
	Sink time.Duration
}

// WithRun returns ctx limited by the run budget
func WithRun(parent context.Context, t Timeouts) (context.Context, context.CancelFunc) {
	return within(parent, t.Run)
}

// ForSink returns a sub context for one sink write, never past the run deadline
func ForSink(parent context.Context, t Timeouts) (context.Context, context.CancelFunc) {
	return within(parent, t.Sink)
}

// Remaining is the time left before the deadline on ctx, zero when there is none
func Remaining(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 {
			return d
		}
	}
	return 0
}

// within takes the tighter of d and the parent remainder; d <= 0 only adds cancel
func within(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	if rem := Remaining(parent); rem > 0 && rem < d {
		d = rem
	}
	return context.WithTimeout(parent, d)
}
