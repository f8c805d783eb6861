package guardrails

import (
	"context"
	"testing"
	"time"
)

func TestWithin_NoLimit(t *testing.T) {
	ctx, cancel := WithRun(context.Background(), Timeouts{})
	defer cancel()
	if _, ok := ctx.Deadline(); ok {
		t.Fatalf("zero budget should not set a deadline")
	}
	if Remaining(ctx) != 0 {
		t.Fatalf("Remaining without deadline should be zero")
	}
	cancel()
	if ctx.Err() == nil {
		t.Fatalf("cancel should end the child")
	}
}

func TestForSink_NeverExtendsParent(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ctx, c2 := ForSink(parent, Timeouts{Sink: time.Hour})
	defer c2()
	if rem := Remaining(ctx); rem <= 0 || rem > 50*time.Millisecond {
		t.Fatalf("sink budget escaped parent: %v", rem)
	}

	ctx, c3 := ForSink(context.Background(), Timeouts{Sink: 10 * time.Millisecond})
	defer c3()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("sink budget did not fire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Fatalf("want deadline exceeded, got %v", ctx.Err())
	}
}

func TestRemaining_Expired(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	if Remaining(ctx) != 0 {
		t.Fatalf("expired deadline should report zero")
	}
}
