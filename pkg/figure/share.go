package figure

import (
	"math"
	"strings"

	"gonum.org/v1/plot"

	"github.com/panplot/panplot/pkg/errors"
)

// ShareLevel controls how much axis state a row or column of subplots
// has in common.
type ShareLevel int

// Sharing levels, in increasing strictness. Each level implies the
// ones below it.
const (
	ShareNone   ShareLevel = iota // independent axes
	ShareLabels                   // interior axis labels removed
	ShareLimits                   // axis limits unified as well
	ShareAll                      // interior tick labels removed too
)

// String returns the parseable name of the level.
func (l ShareLevel) String() string {
	switch l {
	case ShareNone:
		return "none"
	case ShareLabels:
		return "labels"
	case ShareLimits:
		return "limits"
	case ShareAll:
		return "all"
	}
	return "unknown"
}

// ParseShareLevel reads a sharing level from its name, its numeric
// form 0 through 3, or the booleans "false" (none) and "true" (all).
func ParseShareLevel(s string) (ShareLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false", "none":
		return ShareNone, nil
	case "1", "labels":
		return ShareLabels, nil
	case "2", "limits":
		return ShareLimits, nil
	case "3", "true", "all":
		return ShareAll, nil
	}
	return ShareNone, errors.New(errors.ErrCodeInvalidInput,
		"unknown sharing level %q, options are: none, labels, limits, all, false, true, 0-3", s)
}

// ShareOptions selects the sharing level per axis. SpanX and SpanY
// additionally collapse the remaining outer axis labels onto the
// middle subplot of the bottom row (SpanX) or leftmost column (SpanY).
type ShareOptions struct {
	X, Y         ShareLevel
	SpanX, SpanY bool
}

// Share applies axis sharing to a rows by cols grid of plots, given
// row-major. Nil entries mark empty cells and are skipped. X state is
// shared within each column with the bottom subplot keeping its
// labels; Y state is shared within each row with the leftmost subplot
// keeping its labels.
func Share(plots []*plot.Plot, rows, cols int, opts ShareOptions) error {
	if rows < 1 || cols < 1 {
		return errors.New(errors.ErrCodeInvalidLayout, "grid needs at least one row and one column, got %dx%d", rows, cols)
	}
	if len(plots) != rows*cols {
		return errors.New(errors.ErrCodeInvalidLayout, "%d plots given, grid has %d cells", len(plots), rows*cols)
	}
	at := func(r, c int) *plot.Plot { return plots[r*cols+c] }

	if opts.X > ShareNone {
		for c := 0; c < cols; c++ {
			var column []*plot.Plot
			for r := 0; r < rows; r++ {
				if p := at(r, c); p != nil {
					column = append(column, p)
				}
			}
			if len(column) < 2 {
				continue
			}
			if opts.X >= ShareLimits {
				min, max := math.Inf(1), math.Inf(-1)
				for _, p := range column {
					min = math.Min(min, p.X.Min)
					max = math.Max(max, p.X.Max)
				}
				for _, p := range column {
					p.X.Min, p.X.Max = min, max
				}
			}
			// All but the bottom subplot are interior.
			for _, p := range column[:len(column)-1] {
				p.X.Label.Text = ""
				if opts.X >= ShareAll {
					p.X.Tick.Marker = unlabeled{p.X.Tick.Marker}
				}
			}
		}
	}

	if opts.Y > ShareNone {
		for r := 0; r < rows; r++ {
			var row []*plot.Plot
			for c := 0; c < cols; c++ {
				if p := at(r, c); p != nil {
					row = append(row, p)
				}
			}
			if len(row) < 2 {
				continue
			}
			if opts.Y >= ShareLimits {
				min, max := math.Inf(1), math.Inf(-1)
				for _, p := range row {
					min = math.Min(min, p.Y.Min)
					max = math.Max(max, p.Y.Max)
				}
				for _, p := range row {
					p.Y.Min, p.Y.Max = min, max
				}
			}
			// All but the leftmost subplot are interior.
			for _, p := range row[1:] {
				p.Y.Label.Text = ""
				if opts.Y >= ShareAll {
					p.Y.Tick.Marker = unlabeled{p.Y.Tick.Marker}
				}
			}
		}
	}

	if opts.SpanX {
		spanColumn := cols / 2
		for c := 0; c < cols; c++ {
			if c == spanColumn {
				continue
			}
			for r := rows - 1; r >= 0; r-- {
				if p := at(r, c); p != nil {
					p.X.Label.Text = ""
					break
				}
			}
		}
	}
	if opts.SpanY {
		spanRow := rows / 2
		for r := 0; r < rows; r++ {
			if r == spanRow {
				continue
			}
			for c := 0; c < cols; c++ {
				if p := at(r, c); p != nil {
					p.Y.Label.Text = ""
					break
				}
			}
		}
	}
	return nil
}

// unlabeled strips the labels from another ticker's ticks, hiding the
// tick text of interior shared axes while keeping the marks.
type unlabeled struct {
	plot.Ticker
}

func (u unlabeled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
