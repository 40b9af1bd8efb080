package scale

import (
	"gonum.org/v1/plot"

	"github.com/panplot/panplot/pkg/tick"
)

// Scale couples a Transform with the axis policies that make it usable
// on a gonum plot.Axis: the limit-clamping rule, the default ticker and
// the default tick formatter. Scale implements plot.Normalizer.
type Scale struct {
	name      string
	transform Transform
	limit     func(min, max float64) (float64, float64)
	ticker    plot.Ticker
	formatter tick.Formatter
}

// FromTransform wraps an arbitrary Transform in a Scale with linear-axis
// defaults: unrestricted limits, automatic ticks and the Auto formatter.
func FromTransform(t Transform) *Scale {
	return &Scale{
		name:      t.Name(),
		transform: t,
		ticker:    tick.DefaultTicker(),
		formatter: tick.NewAutoFormatter(),
	}
}

// Name returns the registered name of the scale.
func (s *Scale) Name() string { return s.name }

// Transform returns the forward/inverse pair backing the scale.
func (s *Scale) Transform() Transform { return s.transform }

// Ticker returns the default major ticker for the scale.
func (s *Scale) Ticker() plot.Ticker { return s.ticker }

// Formatter returns the default tick label formatter for the scale.
func (s *Scale) Formatter() tick.Formatter { return s.formatter }

// Normalize implements plot.Normalizer. It maps x into [0, 1] relative
// to min and max through the forward transform, exactly how the host
// framework warps axis coordinates before linear layout.
func (s *Scale) Normalize(min, max, x float64) float64 {
	f := s.transform
	lo := f.Forward(min)
	hi := f.Forward(max)
	return (f.Forward(x) - lo) / (hi - lo)
}

// LimitRange clamps requested axis limits to the displayable domain of
// the scale. Scales without domain restrictions return the limits
// unchanged.
func (s *Scale) LimitRange(min, max float64) (float64, float64) {
	if s.limit == nil {
		return min, max
	}
	return s.limit(min, max)
}

// Apply installs the scale on a plot axis: the normalizer, the default
// ticker relabeled through the default formatter, and limits clamped to
// the displayable domain.
func (s *Scale) Apply(axis *plot.Axis) {
	axis.Scale = s
	axis.Tick.Marker = tick.Labeled{Ticker: s.ticker, Formatter: s.formatter}
	axis.Min, axis.Max = s.LimitRange(axis.Min, axis.Max)
}

// limitPositive clamps both limits to at least minpos. Used by scales
// whose domain is the positive reals.
func limitPositive(minpos float64) func(min, max float64) (float64, float64) {
	return func(min, max float64) (float64, float64) {
		if min < minpos {
			min = minpos
		}
		if max < minpos {
			max = minpos
		}
		return min, max
	}
}

// limitInterval clamps limits into [lo, hi]. Used by the latitude scales.
func limitInterval(lo, hi float64) func(min, max float64) (float64, float64) {
	return func(min, max float64) (float64, float64) {
		if min < lo {
			min = lo
		}
		if max > hi {
			max = hi
		}
		return min, max
	}
}
