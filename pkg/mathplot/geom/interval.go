// Package geom provides the coordinate bookkeeping behind a plot session:
// bounding intervals, uniform sampling and tangent coefficients.
package geom

import "math"

// Point is a single (x, y) coordinate in data space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Interval is a closed range [Min, Max] on one axis.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Include widens the interval so that it contains v and reports whether
// the interval changed. Non-finite values are ignored.
func (iv *Interval) Include(v float64) bool {
	if !IsFinite(v) {
		return false
	}
	changed := false
	if v < iv.Min {
		iv.Min = v
		changed = true
	}
	if v > iv.Max {
		iv.Max = v
		changed = true
	}
	return changed
}

// Contains reports whether v lies in [Min, Max].
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// Empty reports whether the interval has zero width.
func (iv Interval) Empty() bool {
	return iv.Max <= iv.Min
}

// Span returns Max - Min.
func (iv Interval) Span() float64 {
	return iv.Max - iv.Min
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
