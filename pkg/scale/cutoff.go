package scale

import (
	"math"

	"github.com/panplot/panplot/pkg/errors"
)

// Cutoff is a piecewise-linear transform that compresses or expands part
// of the axis, or jumps over it entirely.
//
// Without an upper bound there are two behaviors:
//
//  1. Scale > 1 "accelerates" the axis to the right of Lower: a unit of
//     data space shrinks to 1/Scale units of scaled space.
//  2. Scale < 1 "decelerates" it, expanding the region instead.
//
// With an upper bound the compression applies only between Lower and
// Upper, and Scale = +Inf collapses the interval completely so the axis
// jumps discretely from Lower to Upper.
type Cutoff struct {
	Scale float64
	Lower float64
	Upper float64 // NaN when no upper bound was given
}

// NewCutoff creates a cutoff transform that compresses everything to the
// right of lower by the given scale factor.
func NewCutoff(sc, lower float64) (*Cutoff, error) {
	return NewCutoffRange(sc, lower, math.NaN())
}

// NewCutoffRange creates a cutoff transform acting between lower and
// upper. Pass NaN for upper to compress everything right of lower
// instead. The scale must be positive; a discrete jump (scale = +Inf)
// requires both bounds.
func NewCutoffRange(sc, lower, upper float64) (*Cutoff, error) {
	if sc <= 0 || math.IsNaN(sc) {
		return nil, errors.New(errors.ErrCodeInvalidScale, "cutoff scale must be a positive float, got %g", sc)
	}
	if math.IsNaN(upper) && math.IsInf(sc, 1) {
		return nil, errors.New(errors.ErrCodeInvalidScale, "a discrete jump needs both lower and upper bounds, only lower was given")
	}
	if !math.IsNaN(upper) && upper <= lower {
		return nil, errors.New(errors.ErrCodeInvalidScale, "cutoff upper bound %g must exceed lower bound %g", upper, lower)
	}
	return &Cutoff{Scale: sc, Lower: lower, Upper: upper}, nil
}

// Name returns "cutoff".
func (*Cutoff) Name() string { return "cutoff" }

// width is the amount of scaled space removed between the bounds.
func (t *Cutoff) width() float64 {
	return (t.Upper - t.Lower) * (1 - 1/t.Scale)
}

// Forward compresses the region beyond Lower (or between the bounds).
func (t *Cutoff) Forward(v float64) float64 {
	switch {
	case math.IsNaN(t.Upper):
		if v > t.Lower {
			return t.Lower + (v-t.Lower)/t.Scale
		}
		return v
	case math.IsInf(t.Scale, 1):
		// Discrete jump: the whole interval collapses onto Lower.
		if v > t.Upper {
			return v - (t.Upper - t.Lower)
		}
		if v > t.Lower {
			return t.Lower
		}
		return v
	default:
		if v > t.Upper {
			return v - t.width()
		}
		if v > t.Lower {
			return t.Lower + (v-t.Lower)/t.Scale
		}
		return v
	}
}

// Inverse undoes Forward. For a discrete jump the collapsed interval has
// no unique preimage; scaled values at Lower map back to Lower.
func (t *Cutoff) Inverse(v float64) float64 {
	switch {
	case math.IsNaN(t.Upper):
		if v > t.Lower {
			return t.Lower + (v-t.Lower)*t.Scale
		}
		return v
	case math.IsInf(t.Scale, 1):
		if v > t.Lower {
			return v + (t.Upper - t.Lower)
		}
		return v
	default:
		// The compressed interval ends at Upper - width in scaled space.
		if v > t.Upper-t.width() {
			return v + t.width()
		}
		if v > t.Lower {
			return t.Lower + (v-t.Lower)*t.Scale
		}
		return v
	}
}
