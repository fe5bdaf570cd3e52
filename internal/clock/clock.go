// Package clock derives the running game time from the server-supplied
// start timestamp. The elapsed time is computed against the local clock on
// every tick, so the display advances independently of fetch latency.
package clock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// FormatElapsed formats a duration as H:MM:SS with zero-padded minutes and
// seconds and unpadded hours. Sub-second precision is truncated.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// GameClock reports time elapsed since a fixed start.
type GameClock struct {
	start time.Time
	clock clockwork.Clock
}

// NewGameClock creates a clock for the given start time. A nil clock uses
// the wall clock.
func NewGameClock(start time.Time, clk clockwork.Clock) *GameClock {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &GameClock{start: start, clock: clk}
}

// Elapsed returns whole seconds since the start time. Never negative: a
// start time ahead of the local clock (skew) reads as zero.
func (g *GameClock) Elapsed() time.Duration {
	d := g.clock.Since(g.start).Truncate(time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// Display returns the elapsed time formatted as H:MM:SS.
func (g *GameClock) Display() string {
	return FormatElapsed(g.Elapsed())
}
