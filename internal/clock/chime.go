package clock

import "time"

// HourChime decides when the full-hour cue fires. The clock is re-read
// every second, so the display can sit at H:00:00 across several
// evaluations; the chime must fire once per hour value, not once per
// evaluation. Explicit state machine: either no hour has played yet, or
// the last played hour is N.
type HourChime struct {
	played   bool
	lastHour int64
}

// NewHourChime returns a chime with no hour played yet.
func NewHourChime() *HourChime {
	return &HourChime{}
}

// Observe feeds the current elapsed time and reports whether the cue
// should fire now: minutes and seconds are both zero, the hour is
// non-zero, and this hour value has not fired before.
func (c *HourChime) Observe(elapsed time.Duration) bool {
	total := int64(elapsed / time.Second)
	if total < 0 {
		return false
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if m != 0 || s != 0 || h == 0 {
		return false
	}
	if c.played && c.lastHour == h {
		return false
	}

	c.played = true
	c.lastHour = h
	return true
}
