package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{59 * time.Second, "0:00:59"},
		{60 * time.Second, "0:01:00"},
		{3661 * time.Second, "1:01:01"},
		{3600 * time.Second, "1:00:00"},
		{36000 * time.Second, "10:00:00"},
		{90061 * time.Second, "25:01:01"},
		{-5 * time.Second, "0:00:00"},
		{1500 * time.Millisecond, "0:00:01"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGameClockDisplay(t *testing.T) {
	fake := clockwork.NewFakeClock()
	start := fake.Now().Add(-3661 * time.Second)

	g := NewGameClock(start, fake)
	if got := g.Display(); got != "1:01:01" {
		t.Errorf("Display() = %q, want %q", got, "1:01:01")
	}

	fake.Advance(59 * time.Second)
	if got := g.Display(); got != "1:02:00" {
		t.Errorf("Display() after advance = %q, want %q", got, "1:02:00")
	}
}

func TestGameClockSkewClampsToZero(t *testing.T) {
	fake := clockwork.NewFakeClock()
	start := fake.Now().Add(30 * time.Second) // server start ahead of local clock

	g := NewGameClock(start, fake)
	if got := g.Elapsed(); got != 0 {
		t.Errorf("Elapsed() = %s, want 0 for future start", got)
	}
}

func TestHourChimeFiresOncePerHour(t *testing.T) {
	c := NewHourChime()

	// Second-by-second walk across the first hour boundary.
	if c.Observe(3599 * time.Second) {
		t.Error("chime fired at 0:59:59")
	}
	if !c.Observe(3600 * time.Second) {
		t.Error("chime did not fire at 1:00:00")
	}
	// The clock can read 1:00:00 on several consecutive evaluations.
	if c.Observe(3600 * time.Second) {
		t.Error("chime re-fired at 1:00:00")
	}
	if c.Observe(3600*time.Second + 500*time.Millisecond) {
		t.Error("chime re-fired within the same second")
	}
	if c.Observe(3601 * time.Second) {
		t.Error("chime fired at 1:00:01")
	}

	if !c.Observe(7200 * time.Second) {
		t.Error("chime did not fire at 2:00:00")
	}
	if c.Observe(7200 * time.Second) {
		t.Error("chime re-fired at 2:00:00")
	}
}

func TestHourChimeSilentAtStart(t *testing.T) {
	c := NewHourChime()
	if c.Observe(0) {
		t.Error("chime fired at 0:00:00")
	}
	if c.Observe(0) {
		t.Error("chime fired on repeated 0:00:00")
	}
	// Still fires at the first real boundary.
	if !c.Observe(3600 * time.Second) {
		t.Error("chime did not fire at 1:00:00 after silent start")
	}
}

func TestHourChimeSkipsMissedBoundary(t *testing.T) {
	// A viewer joining late sees the current hour only if the clock reads
	// exactly H:00:00 on a tick.
	c := NewHourChime()
	if c.Observe(2*3600*time.Second + 30*time.Minute) {
		t.Error("chime fired at 2:30:00")
	}
	if !c.Observe(3 * 3600 * time.Second) {
		t.Error("chime did not fire at 3:00:00")
	}
}
