package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// Func is a real function of one variable.
type Func func(x float64) float64

// ErrInvalidDomain indicates an empty, reversed or non-numeric interval,
// or a sample count below two.
var ErrInvalidDomain = errors.New("invalid domain")

// ErrUndefined indicates a function returned NaN or an infinity.
var ErrUndefined = errors.New("function undefined")

// UndefinedError records where a function evaluation produced a non-finite value.
type UndefinedError struct {
	X     float64
	Value float64
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("function undefined at x=%g (got %g)", e.X, e.Value)
}

func (e *UndefinedError) Unwrap() error {
	return ErrUndefined
}

// ValidateDomain checks that [x1, x2] is a non-empty finite interval.
func ValidateDomain(x1, x2 float64) error {
	if !IsFinite(x1) || !IsFinite(x2) {
		return fmt.Errorf("%w: bounds (%g, %g) are not finite", ErrInvalidDomain, x1, x2)
	}
	if x2 <= x1 {
		return fmt.Errorf("%w: interval (%g, %g) is empty", ErrInvalidDomain, x1, x2)
	}
	return nil
}

// Linspace returns n evenly spaced values over [x1, x2], both endpoints included.
// It returns nil when n < 2.
func Linspace(x1, x2 float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	xs := floats.Span(make([]float64, n), x1, x2)
	xs[n-1] = x2
	return xs
}

// Arange returns start, start+step, ... up to but excluding stop.
// It returns nil for a non-positive or non-finite step.
func Arange(start, stop, step float64) []float64 {
	if !(step > 0) || !IsFinite(step) || !IsFinite(start) || !IsFinite(stop) {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Sample evaluates fn at n evenly spaced points over [x1, x2].
// Unlike IntegralRegion it keeps non-finite values so callers can break
// a curve where the function is undefined.
func Sample(fn Func, x1, x2 float64, n int) ([]Point, error) {
	if err := validateSampling(x1, x2, n); err != nil {
		return nil, err
	}
	xs := Linspace(x1, x2, n)
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: fn(x)}
	}
	return pts, nil
}

// IntegralRegion returns the (x, fn(x)) pairs of a uniform partition of
// [x1, x2] with the given number of samples, endpoints included.
func IntegralRegion(fn Func, x1, x2 float64, samples int) ([]Point, error) {
	pts, err := Sample(fn, x1, x2, samples)
	if err != nil {
		return nil, err
	}
	for _, p := range pts {
		if !IsFinite(p.Y) {
			return nil, &UndefinedError{X: p.X, Value: p.Y}
		}
	}
	return pts, nil
}

// Band is one sample of the region between two curves.
type Band struct {
	X     float64 `json:"x"`
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

// IntegralBetween samples fn1 and fn2 over the same uniform partition of
// [x1, x2]. Upper holds fn1 and Lower holds fn2; the names do not imply order.
func IntegralBetween(fn1, fn2 Func, x1, x2 float64, samples int) ([]Band, error) {
	if err := validateSampling(x1, x2, samples); err != nil {
		return nil, err
	}
	xs := Linspace(x1, x2, samples)
	out := make([]Band, samples)
	for i, x := range xs {
		y1, y2 := fn1(x), fn2(x)
		if !IsFinite(y1) {
			return nil, &UndefinedError{X: x, Value: y1}
		}
		if !IsFinite(y2) {
			return nil, &UndefinedError{X: x, Value: y2}
		}
		out[i] = Band{X: x, Upper: y1, Lower: y2}
	}
	return out, nil
}

// TangentAt returns the slope k and intercept m of the tangent to fn at x,
// using the centered difference (fn(x+h) - fn(x-h)) / 2h.
func TangentAt(fn Func, x, h float64) (k, m float64, err error) {
	if !IsFinite(x) {
		return 0, 0, fmt.Errorf("%w: x=%g is not finite", ErrInvalidDomain, x)
	}
	if !(h > 0) || !IsFinite(h) {
		return 0, 0, fmt.Errorf("%w: step h=%g must be positive", ErrInvalidDomain, h)
	}
	for _, xi := range []float64{x - h, x, x + h} {
		if y := fn(xi); !IsFinite(y) {
			return 0, 0, &UndefinedError{X: xi, Value: y}
		}
	}
	k = fd.Derivative(fn, x, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})
	m = fn(x) - k*x
	return k, m, nil
}

func validateSampling(x1, x2 float64, n int) error {
	if err := ValidateDomain(x1, x2); err != nil {
		return err
	}
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDomain, n)
	}
	return nil
}
