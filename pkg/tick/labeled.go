package tick

import "gonum.org/v1/plot"

// Labeled composes a ticker with a formatter: tick positions come from
// Ticker and major tick labels are rewritten through Formatter. Minor
// ticks (empty label) pass through untouched. A formatter returning ""
// demotes the tick to a minor tick, which is how range-limited
// formatters suppress labels.
type Labeled struct {
	Ticker    plot.Ticker
	Formatter Formatter
}

// Ticks implements plot.Ticker.
func (l Labeled) Ticks(min, max float64) []plot.Tick {
	ticks := l.Ticker.Ticks(min, max)
	if l.Formatter == nil {
		return ticks
	}
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = l.Formatter.Format(t.Value)
	}
	return ticks
}
