package clock

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2021, 1, 14, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("elapsed after Advance = %v, want 250ms", got)
	}

	// 负值不能让时间倒退
	c.Advance(-time.Second)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("elapsed after negative Advance = %v, want 250ms", got)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	var c Clock = SystemClock{}
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("SystemClock went backwards: %v then %v", a, b)
	}
}
