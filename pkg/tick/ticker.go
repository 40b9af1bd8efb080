package tick

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
)

// maxTicks caps how many ticks a single ticker will emit, protecting
// against degenerate ranges (for example a multiple ticker with a tiny
// step across a huge range).
const maxTicks = 1000

// defaultLabel renders a tick value in shortest form for tickers used
// without an explicit Formatter.
func defaultLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// DefaultTicker places ticks at sensible locations using the host
// framework's default algorithm.
func DefaultTicker() plot.Ticker { return plot.DefaultTicks{} }

// NullTicker places no ticks at all.
func NullTicker() plot.Ticker { return nullTicker{} }

type nullTicker struct{}

func (nullTicker) Ticks(min, max float64) []plot.Tick { return nil }

// FixedTicker places major ticks at exactly the given values. Values
// outside the axis range are dropped at layout time.
func FixedTicker(vals ...float64) plot.Ticker {
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return fixedTicker(sorted)
}

type fixedTicker []float64

func (f fixedTicker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, v := range f {
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: defaultLabel(v)})
	}
	return ticks
}

// MultipleTicker places major ticks on every multiple of step away from
// zero. A non-positive step yields no ticks.
func MultipleTicker(step float64) plot.Ticker { return multipleTicker{step: step, offset: 0} }

// IndexTicker places major ticks every step starting from offset, like
// tick positions on an integer category axis.
func IndexTicker(step, offset float64) plot.Ticker {
	return multipleTicker{step: step, offset: offset}
}

type multipleTicker struct {
	step   float64
	offset float64
}

func (m multipleTicker) Ticks(min, max float64) []plot.Tick {
	if m.step <= 0 || max < min {
		return nil
	}
	var ticks []plot.Tick
	k := math.Ceil((min - m.offset) / m.step)
	for v := m.offset + k*m.step; v <= max && len(ticks) < maxTicks; v += m.step {
		ticks = append(ticks, plot.Tick{Value: v, Label: defaultLabel(v)})
	}
	return ticks
}

// LinearTicker places exactly n major ticks evenly spanning the axis
// range, endpoints included.
func LinearTicker(n int) plot.Ticker { return linearTicker(n) }

type linearTicker int

func (n linearTicker) Ticks(min, max float64) []plot.Tick {
	if n < 2 || max <= min {
		return nil
	}
	ticks := make([]plot.Tick, 0, n)
	for i := 0; i < int(n); i++ {
		v := min + (max-min)*float64(i)/float64(n-1)
		ticks = append(ticks, plot.Tick{Value: v, Label: defaultLabel(v)})
	}
	return ticks
}

// LogTicker places major ticks on the given multiples of every power of
// the base; subs of nil means {1}, ticking each power itself. With subs
// {1} and base 10, minor unlabeled ticks fill in the remaining decade
// multiples.
func LogTicker(base float64, subs []float64) plot.Ticker {
	if len(subs) == 0 {
		subs = []float64{1}
	}
	sorted := slices.Clone(subs)
	slices.Sort(sorted)
	return logTicker{base: base, subs: sorted}
}

type logTicker struct {
	base float64
	subs []float64
}

func (l logTicker) Ticks(min, max float64) []plot.Tick {
	if l.base <= 1 || min <= 0 || max <= min {
		return nil
	}
	minors := l.base == 10 && len(l.subs) == 1 && l.subs[0] == 1

	var ticks []plot.Tick
	kmin := math.Floor(math.Log(min) / math.Log(l.base))
	kmax := math.Ceil(math.Log(max) / math.Log(l.base))
	for k := kmin; k <= kmax && len(ticks) < maxTicks; k++ {
		pow := math.Pow(l.base, k)
		for _, s := range l.subs {
			v := s * pow
			if v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: defaultLabel(v)})
		}
		if minors {
			for m := 2.0; m <= 9; m++ {
				v := m * pow
				if v < min || v > max {
					continue
				}
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

// MinorTicker overlays the positions of sub onto the ticks of major,
// demoted to unlabeled minor ticks. Positions sub shares with a major
// tick are dropped.
func MinorTicker(major, sub plot.Ticker) plot.Ticker {
	return minorTicker{major: major, sub: sub}
}

type minorTicker struct {
	major plot.Ticker
	sub   plot.Ticker
}

func (m minorTicker) Ticks(min, max float64) []plot.Tick {
	ticks := m.major.Ticks(min, max)
	taken := make(map[float64]bool, len(ticks))
	for _, t := range ticks {
		taken[t.Value] = true
	}
	for _, t := range m.sub.Ticks(min, max) {
		if taken[t.Value] || len(ticks) >= maxTicks {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: t.Value})
	}
	return ticks
}

// SymLogTicker places major ticks at zero and at ±linthresh times every
// power of the base, matching the decades of a symmetric log scale.
func SymLogTicker(base, linthresh float64) plot.Ticker {
	return symLogTicker{base: base, linthresh: linthresh}
}

type symLogTicker struct {
	base      float64
	linthresh float64
}

func (l symLogTicker) Ticks(min, max float64) []plot.Tick {
	if l.base <= 1 || l.linthresh <= 0 || max <= min {
		return nil
	}
	var ticks []plot.Tick
	add := func(v float64) {
		if v >= min && v <= max && len(ticks) < maxTicks {
			ticks = append(ticks, plot.Tick{Value: v, Label: defaultLabel(v)})
		}
	}

	add(0)
	bound := math.Max(math.Abs(min), math.Abs(max))
	for v := l.linthresh; v <= bound; v *= l.base {
		add(v)
		add(-v)
		if len(ticks) >= maxTicks {
			break
		}
	}
	slices.SortFunc(ticks, func(a, b plot.Tick) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return ticks
}
