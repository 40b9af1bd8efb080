package figure

import (
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/panplot/panplot/pkg/errors"
)

// DefaultTightPad is the breathing room Tight adds on top of the
// measured decoration extents.
const DefaultTightPad = 5 // points

// Pad estimates how far a subplot's decorations (tick labels, axis
// labels, titles) extend beyond each cell edge.
type Pad struct {
	Left, Right, Top, Bottom vg.Length
}

// Tight recomputes the grid's automatic gaps and margins from per-cell
// decoration pads, row-major with one Pad per cell. Gaps and margins
// the caller set explicitly are never touched; everything still marked
// Auto becomes the largest adjacent pad plus DefaultTightPad. Call
// before Solve.
func (g *Grid) Tight(pads []Pad) error {
	if g.Rows < 1 || g.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidLayout, "grid needs at least one row and one column, got %dx%d", g.Rows, g.Cols)
	}
	if len(pads) != g.Rows*g.Cols {
		return errors.New(errors.ErrCodeInvalidLayout, "%d pads given, grid has %d cells", len(pads), g.Rows*g.Cols)
	}
	at := func(r, c int) Pad { return pads[r*g.Cols+c] }

	if g.WSpace == nil {
		g.WSpace = autoSlice(g.Cols - 1)
	}
	if g.HSpace == nil {
		g.HSpace = autoSlice(g.Rows - 1)
	}
	if len(g.WSpace) != g.Cols-1 {
		return errors.New(errors.ErrCodeInvalidLayout, "%d wspace values given, grid has %d gaps along that axis", len(g.WSpace), g.Cols-1)
	}
	if len(g.HSpace) != g.Rows-1 {
		return errors.New(errors.ErrCodeInvalidLayout, "%d hspace values given, grid has %d gaps along that axis", len(g.HSpace), g.Rows-1)
	}

	// Column gaps: right pad of one column against the left pad of
	// the next, worst row wins.
	for c := 0; c < g.Cols-1; c++ {
		if !isAuto(g.WSpace[c]) {
			continue
		}
		var need vg.Length
		for r := 0; r < g.Rows; r++ {
			need = max(need, at(r, c).Right+at(r, c+1).Left)
		}
		g.WSpace[c] = need + DefaultTightPad
	}

	// Row gaps: bottom pad of the upper row against the top pad of
	// the row beneath it.
	for r := 0; r < g.Rows-1; r++ {
		if !isAuto(g.HSpace[r]) {
			continue
		}
		var need vg.Length
		for c := 0; c < g.Cols; c++ {
			need = max(need, at(r, c).Bottom+at(r+1, c).Top)
		}
		g.HSpace[r] = need + DefaultTightPad
	}

	// Margins take the largest pad along each outer edge.
	if isAuto(g.Left) {
		var need vg.Length
		for r := 0; r < g.Rows; r++ {
			need = max(need, at(r, 0).Left)
		}
		g.Left = need + DefaultTightPad
	}
	if isAuto(g.Right) {
		var need vg.Length
		for r := 0; r < g.Rows; r++ {
			need = max(need, at(r, g.Cols-1).Right)
		}
		g.Right = need + DefaultTightPad
	}
	if isAuto(g.Top) {
		var need vg.Length
		for c := 0; c < g.Cols; c++ {
			need = max(need, at(0, c).Top)
		}
		g.Top = need + DefaultTightPad
	}
	if isAuto(g.Bottom) {
		var need vg.Length
		for c := 0; c < g.Cols; c++ {
			need = max(need, at(g.Rows-1, c).Bottom)
		}
		g.Bottom = need + DefaultTightPad
	}
	return nil
}

func isAuto(v vg.Length) bool { return math.IsNaN(float64(v)) }

func autoSlice(n int) []vg.Length {
	out := make([]vg.Length, n)
	for i := range out {
		out[i] = Auto
	}
	return out
}
