package scale

import (
	"math"

	"github.com/panplot/panplot/pkg/errors"
)

// Log maps coordinates through log_base(v). Non-positive input is
// clamped to MinPos rather than producing -Inf or NaN.
type Log struct {
	Base   float64
	MinPos float64
}

// NewLog creates a logarithmic transform with the given base.
// The base must be positive and not equal to one.
func NewLog(base float64) (*Log, error) {
	if base <= 0 || base == 1 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "log base must be positive and not 1, got %g", base)
	}
	return &Log{Base: base, MinPos: DefaultMinPos}, nil
}

// Name returns "log".
func (*Log) Name() string { return "log" }

// Forward returns log_base(v), clamping non-positive input to MinPos.
func (t *Log) Forward(v float64) float64 {
	return math.Log(clampMin(v, t.MinPos)) / math.Log(t.Base)
}

// Inverse returns base^v.
func (t *Log) Inverse(v float64) float64 {
	return math.Pow(t.Base, v)
}

// SymLog is symmetric-logarithmic: linear within (-LinThresh, LinThresh)
// and logarithmic beyond it, on both sides of zero. LinScale stretches
// the linear region; a value of 1 gives each half of the linear range
// the visual width of one decade.
type SymLog struct {
	Base      float64
	LinThresh float64
	LinScale  float64
}

// NewSymLog creates a symmetric log transform. The base must be greater
// than one and both linthresh and linscale must be positive.
func NewSymLog(base, linthresh, linscale float64) (*SymLog, error) {
	if base <= 1 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "symlog base must be greater than 1, got %g", base)
	}
	if linthresh <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "symlog linear threshold must be positive, got %g", linthresh)
	}
	if linscale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScale, "symlog linear scale must be positive, got %g", linscale)
	}
	return &SymLog{Base: base, LinThresh: linthresh, LinScale: linscale}, nil
}

// Name returns "symlog".
func (*SymLog) Name() string { return "symlog" }

// linScaleAdj is the stretch factor applied to the linear region so that
// it occupies LinScale decades of scaled space.
func (t *SymLog) linScaleAdj() float64 {
	return t.LinScale / (1 - 1/t.Base)
}

// Forward maps v linearly inside the threshold and logarithmically
// outside it.
func (t *SymLog) Forward(v float64) float64 {
	abs := math.Abs(v)
	if abs <= t.LinThresh {
		return v * t.linScaleAdj()
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * t.LinThresh * (t.linScaleAdj() + math.Log(abs/t.LinThresh)/math.Log(t.Base))
}

// Inverse undoes Forward.
func (t *SymLog) Inverse(v float64) float64 {
	adj := t.linScaleAdj()
	invThresh := t.LinThresh * adj // Forward(LinThresh)
	abs := math.Abs(v)
	if abs <= invThresh {
		return v / adj
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * t.LinThresh * math.Pow(t.Base, abs/t.LinThresh-adj)
}
