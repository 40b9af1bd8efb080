package scale

import (
	"github.com/panplot/panplot/pkg/errors"
)

// DefaultMinPos is the smallest value transforms with a positive-only
// domain will accept. Inputs at or below it are clamped to it instead of
// producing infinities.
const DefaultMinPos = 1e-300

// Transform is a forward/inverse coordinate mapping pair.
//
// Forward and Inverse must be mutual inverses over the transform's valid
// domain. Outside that domain implementations either clamp the input to
// the nearest valid value or return NaN (a masked point); they never
// return unexpected infinities.
type Transform interface {
	// Name returns the short lowercase identifier of the mapping.
	Name() string

	// Forward maps a data coordinate to a scaled coordinate.
	Forward(v float64) float64

	// Inverse maps a scaled coordinate back to a data coordinate.
	Inverse(v float64) float64
}

// clampMin truncates v to minpos if it is at or below it.
func clampMin(v, minpos float64) float64 {
	if v <= minpos {
		return minpos
	}
	return v
}

// Linear is the identity transform.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return "linear" }

// Forward returns v unchanged.
func (Linear) Forward(v float64) float64 { return v }

// Inverse returns v unchanged.
func (Linear) Inverse(v float64) float64 { return v }

// Func is a transform built from user-supplied forward and inverse
// functions. The caller is responsible for the two functions actually
// being mutual inverses.
type Func struct {
	forward func(float64) float64
	inverse func(float64) float64
}

// NewFunc creates a Func transform from a forward/inverse function pair.
// Both functions must be non-nil.
func NewFunc(forward, inverse func(float64) float64) (*Func, error) {
	if forward == nil || inverse == nil {
		return nil, errors.New(errors.ErrCodeInvalidScale, "function scale requires both a forward and an inverse function")
	}
	return &Func{forward: forward, inverse: inverse}, nil
}

// Name returns "function".
func (*Func) Name() string { return "function" }

// Forward applies the user-supplied forward function.
func (f *Func) Forward(v float64) float64 { return f.forward(v) }

// Inverse applies the user-supplied inverse function.
func (f *Func) Inverse(v float64) float64 { return f.inverse(v) }
