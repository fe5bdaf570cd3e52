// Package chart prepares profit time series for dual-colored area
// rendering by splitting a signed series at its zero crossings.
package chart

import "time"

// Value is a single series sample. Valid reports whether the sample
// carries a number; an invalid Value is an explicit gap in the series.
type Value struct {
	Float64 float64
	Valid   bool
}

// Gap returns the explicit no-value marker.
func Gap() Value {
	return Value{}
}

// Number returns a valid sample holding f.
func Number(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Marker radii for rendered points. Synthetic crossing points and gaps
// get radius zero so they shape the line without being plotted.
const (
	PointRadius  = 3
	HiddenRadius = 0
)

// Split holds the two non-overlapping sub-series produced by
// SplitAtZero. All five slices have equal length; index i of every
// slice describes the same (possibly synthetic) point in time.
type Split struct {
	Labels        []time.Time
	Positive      []Value
	Negative      []Value
	PositiveRadii []int
	NegativeRadii []int
}

// SplitAtZero splits one signed series into a positive-or-zero series
// and a negative series so each can be rendered as its own colored
// area. Whenever two consecutive valid samples change sign strictly
// (their product is negative; a transition touching exactly zero is
// not a sign change), a synthetic zero point is inserted on both
// sub-series at the linearly interpolated crossing time, so the two
// rendered lines meet on the time axis.
//
// labels and data must have equal length and be in chronological
// order. The function is pure; it never modifies its inputs.
func SplitAtZero(labels []time.Time, data []Value) Split {
	n := len(data)
	out := Split{
		Labels:        make([]time.Time, 0, n),
		Positive:      make([]Value, 0, n),
		Negative:      make([]Value, 0, n),
		PositiveRadii: make([]int, 0, n),
		NegativeRadii: make([]int, 0, n),
	}

	for i := 0; i < n; i++ {
		curr := data[i]

		if i > 0 {
			prev := data[i-1]
			if curr.Valid && prev.Valid && curr.Float64*prev.Float64 < 0 {
				out.Labels = append(out.Labels, crossingTime(labels[i-1], labels[i], prev.Float64, curr.Float64))
				out.Positive = append(out.Positive, Number(0))
				out.Negative = append(out.Negative, Number(0))
				out.PositiveRadii = append(out.PositiveRadii, HiddenRadius)
				out.NegativeRadii = append(out.NegativeRadii, HiddenRadius)
			}
		}

		out.Labels = append(out.Labels, labels[i])

		switch {
		case curr.Valid && curr.Float64 >= 0:
			out.Positive = append(out.Positive, curr)
			out.Negative = append(out.Negative, Gap())
			out.PositiveRadii = append(out.PositiveRadii, PointRadius)
			out.NegativeRadii = append(out.NegativeRadii, HiddenRadius)
		case curr.Valid:
			out.Positive = append(out.Positive, Gap())
			out.Negative = append(out.Negative, curr)
			out.PositiveRadii = append(out.PositiveRadii, HiddenRadius)
			out.NegativeRadii = append(out.NegativeRadii, PointRadius)
		default:
			out.Positive = append(out.Positive, Gap())
			out.Negative = append(out.Negative, Gap())
			out.PositiveRadii = append(out.PositiveRadii, HiddenRadius)
			out.NegativeRadii = append(out.NegativeRadii, HiddenRadius)
		}
	}

	return out
}

// crossingTime interpolates the instant at which the straight line
// between (t0, v0) and (t1, v1) crosses zero.
func crossingTime(t0, t1 time.Time, v0, v1 float64) time.Time {
	frac := v0 / (v0 - v1)
	span := t1.Sub(t0)
	return t0.Add(time.Duration(frac * float64(span)))
}
