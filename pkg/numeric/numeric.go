// Package numeric provides the tolerant floating point comparisons used
// throughout PanCAD. All geometric equality checks route through IsClose so
// that the tolerance policy lives in one place.
package numeric

import "math"

// Default tolerances applied when no Option overrides them.
const (
	DefaultAbsTol = 1e-9
	DefaultRelTol = 1e-9
)

type options struct {
	absTol   float64
	relTol   float64
	nanEqual bool
}

// Option adjusts a comparison's tolerance or NaN policy.
type Option func(*options)

// WithAbsTol overrides the absolute tolerance.
func WithAbsTol(tol float64) Option {
	return func(o *options) { o.absTol = tol }
}

// WithRelTol overrides the relative tolerance.
func WithRelTol(tol float64) Option {
	return func(o *options) { o.relTol = tol }
}

// WithNaNEqual makes NaN compare equal to NaN.
func WithNaNEqual(equal bool) Option {
	return func(o *options) { o.nanEqual = equal }
}

func apply(opts []Option) options {
	o := options{absTol: DefaultAbsTol, relTol: DefaultRelTol}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// IsClose reports whether a and b are equal within tolerance. A value is
// close to another if the difference is within the absolute tolerance or
// within the relative tolerance scaled by the larger magnitude. NaN never
// equals NaN unless WithNaNEqual(true) is given.
func IsClose(a, b float64, opts ...Option) bool {
	o := apply(opts)
	return isClose(a, b, o)
}

func isClose(a, b float64, o options) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return o.nanEqual && math.IsNaN(a) && math.IsNaN(b)
	}
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= o.absTol {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= o.relTol*scale
}

// VecClose reports whether two equal-length vectors are elementwise close.
// Vectors of different lengths are never close.
func VecClose(a, b []float64, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := apply(opts)
	for i := range a {
		if !isClose(a[i], b[i], o) {
			return false
		}
	}
	return true
}

// IsZero reports whether v is within tolerance of zero.
func IsZero(v float64, opts ...Option) bool {
	return IsClose(v, 0, opts...)
}
