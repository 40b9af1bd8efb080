package scale

import (
	"math"

	"github.com/panplot/panplot/pkg/errors"
)

// Power maps coordinates through v^Exponent. Input at or below MinPos is
// clamped to MinPos, so negative values never produce NaN.
//
// With Inverted set, the forward direction performs v^(1/Exponent)
// instead, which makes an axis linear in the Exponent-th root.
type Power struct {
	Exponent float64
	MinPos   float64
	Inverted bool // swap the forward and inverse directions
}

// NewPower creates a power transform with the given exponent.
// The exponent must be non-zero.
func NewPower(exponent float64) (*Power, error) {
	if exponent == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "power exponent must be non-zero")
	}
	return &Power{Exponent: exponent, MinPos: DefaultMinPos}, nil
}

// Name returns "power".
func (*Power) Name() string { return "power" }

// Forward returns v^Exponent (or v^(1/Exponent) when Inverted).
func (t *Power) Forward(v float64) float64 {
	if t.Inverted {
		return t.root(v)
	}
	return t.pow(v)
}

// Inverse returns v^(1/Exponent) (or v^Exponent when Inverted).
func (t *Power) Inverse(v float64) float64 {
	if t.Inverted {
		return t.pow(v)
	}
	return t.root(v)
}

func (t *Power) pow(v float64) float64 {
	return math.Pow(clampMin(v, t.MinPos), t.Exponent)
}

func (t *Power) root(v float64) float64 {
	return math.Pow(clampMin(v, t.MinPos), 1/t.Exponent)
}

// Exp maps coordinates through Coeff * Base^(Rate*v). The inverse
// direction is (log_Base(v) - log_Base(Coeff)) / Rate with non-positive
// input clamped to MinPos.
//
// With Inverted set, the forward direction performs the logarithmic
// operation instead. The db, idb, np, inp, height and pressure presets
// are all instances of this transform.
type Exp struct {
	Base     float64 // base of the exponential, the a in C*a^(b*v)
	Rate     float64 // scale of the exponent, the b in C*a^(b*v)
	Coeff    float64 // leading coefficient, the C in C*a^(b*v)
	MinPos   float64
	Inverted bool // swap the forward and inverse directions
}

// NewExp creates an exponential transform C*Base^(Rate*v). The base must
// be positive and not 1, the rate non-zero and the coefficient positive;
// anything else makes the mapping non-invertible.
func NewExp(base, rate, coeff float64) (*Exp, error) {
	if base <= 0 || base == 1 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "exp base must be positive and not 1, got %g", base)
	}
	if rate == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "exp rate must be non-zero")
	}
	if coeff <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "exp coefficient must be positive, got %g", coeff)
	}
	return &Exp{Base: base, Rate: rate, Coeff: coeff, MinPos: DefaultMinPos}, nil
}

// Name returns "exp".
func (*Exp) Name() string { return "exp" }

// Forward returns Coeff*Base^(Rate*v), or the logarithmic inverse when
// Inverted.
func (t *Exp) Forward(v float64) float64 {
	if t.Inverted {
		return t.log(v)
	}
	return t.exp(v)
}

// Inverse undoes Forward.
func (t *Exp) Inverse(v float64) float64 {
	if t.Inverted {
		return t.exp(v)
	}
	return t.log(v)
}

func (t *Exp) exp(v float64) float64 {
	return t.Coeff * math.Pow(t.Base, t.Rate*v)
}

func (t *Exp) log(v float64) float64 {
	v = clampMin(v, t.MinPos)
	return math.Log(v/t.Coeff) / (t.Rate * math.Log(t.Base))
}
