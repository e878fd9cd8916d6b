package worker

import (
	"testing"
	"time"
)

func TestExponentialBackoff_Grows(t *testing.T) {
	prev := time.Duration(0)

	for attempt := 0; attempt < 5; attempt++ {
		d := ExponentialBackoff(attempt)

		if d < prev {
			t.Fatalf("attempt %d: delay %v shorter than previous %v", attempt, d, prev)
		}

		// strip jitter for the next comparison
		prev = d - 250*time.Millisecond
	}
}

func TestExponentialBackoff_Capped(t *testing.T) {
	d := ExponentialBackoff(20)

	if d > 5*time.Minute+250*time.Millisecond {
		t.Fatalf("expected delay capped at 5m, got %v", d)
	}
}
