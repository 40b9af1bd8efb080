package figure

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/panplot/panplot/pkg/errors"
)

// Auto marks a spacing or margin value to be filled in by Solve (or by
// Tight). Explicitly set values are never touched.
var Auto = vg.Length(math.NaN())

// Layout defaults used for Auto values.
const (
	DefaultRefWidth = 2.5 * vg.Inch
	DefaultSpace    = 0.25 * vg.Inch
	DefaultMargin   = 0.5 * vg.Inch
)

// Grid describes a subplot layout. Sizing follows from the reference
// cell: its dimensions propagate through the ratio arrays and the
// spacing to a total figure size. Fixing FigWidth or FigHeight solves
// backwards for the reference cell instead, and a Journal preset pins
// the figure dimensions to a publisher spec.
type Grid struct {
	Rows, Cols int

	// Relative cell sizes; nil means equal. Lengths must match
	// Cols and Rows respectively.
	WRatios, HRatios []float64

	// Per-gap spacing overrides, Cols-1 and Rows-1 entries; nil or
	// Auto entries are filled with DefaultSpace (or by Tight).
	WSpace, HSpace []vg.Length

	// Outer margins; Auto means DefaultMargin (or Tight's estimate).
	Left, Right, Top, Bottom vg.Length

	// Reference cell sizing. Zero values are unset. RefAspect is
	// width over height and defaults to 1.
	RefWidth, RefHeight vg.Length
	RefAspect           float64

	// Fixed figure dimensions; zero values are unset.
	FigWidth, FigHeight vg.Length

	// Ref is the 1-based row-major index of the reference cell.
	Ref int

	// Journal pins the figure size to a publisher preset.
	Journal string
}

// NewGrid creates a rows by cols Grid with automatic spacing and
// margins and the first cell as reference.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows: rows, Cols: cols,
		Left: Auto, Right: Auto, Top: Auto, Bottom: Auto,
		Ref: 1,
	}
}

// Geometry is a solved layout: the figure dimensions and one rectangle
// per cell, row-major with row 0 at the top. Rectangles use the vg
// convention of a bottom-left origin.
type Geometry struct {
	Width, Height vg.Length

	rows, cols int
	cells      []vg.Rectangle
}

// Cell returns the rectangle of the cell at (row, col), 0-based.
func (g *Geometry) Cell(row, col int) vg.Rectangle {
	return g.cells[row*g.cols+col]
}

// Cells returns all cell rectangles, row-major.
func (g *Geometry) Cells() []vg.Rectangle {
	out := make([]vg.Rectangle, len(g.cells))
	copy(out, g.cells)
	return out
}

// Canvases crops a canvas into per-cell canvases, row-major. The
// canvas should have the solved figure dimensions; cells are placed
// relative to its lower-left corner.
func (g *Geometry) Canvases(dc draw.Canvas) []draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	out := make([]draw.Canvas, len(g.cells))
	for i, r := range g.cells {
		out[i] = draw.Crop(dc, r.Min.X, r.Max.X-w, r.Min.Y, r.Max.Y-h)
	}
	return out
}

// Solve computes the figure geometry. It validates the grid, resolves
// journal presets and automatic spacing, determines the reference cell
// dimensions and lays out every cell.
func (g *Grid) Solve() (*Geometry, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "grid needs at least one row and one column, got %dx%d", g.Rows, g.Cols)
	}
	wr, err := resolveRatios("width", g.WRatios, g.Cols)
	if err != nil {
		return nil, err
	}
	hr, err := resolveRatios("height", g.HRatios, g.Rows)
	if err != nil {
		return nil, err
	}
	wspace, err := resolveSpaces("wspace", g.WSpace, g.Cols-1)
	if err != nil {
		return nil, err
	}
	hspace, err := resolveSpaces("hspace", g.HSpace, g.Rows-1)
	if err != nil {
		return nil, err
	}
	left, err := resolveMargin("left", g.Left)
	if err != nil {
		return nil, err
	}
	right, err := resolveMargin("right", g.Right)
	if err != nil {
		return nil, err
	}
	top, err := resolveMargin("top", g.Top)
	if err != nil {
		return nil, err
	}
	bottom, err := resolveMargin("bottom", g.Bottom)
	if err != nil {
		return nil, err
	}

	ref := g.Ref
	if ref == 0 {
		ref = 1
	}
	if ref < 1 || ref > g.Rows*g.Cols {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "reference cell %d out of range for a %dx%d grid", ref, g.Rows, g.Cols)
	}
	refRow := (ref - 1) / g.Cols
	refCol := (ref - 1) % g.Cols

	aspect := g.RefAspect
	if aspect < 0 || math.IsNaN(aspect) {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "reference aspect must be positive, got %g", aspect)
	}
	if aspect == 0 {
		aspect = 1
	}

	figW, figH := g.FigWidth, g.FigHeight
	if g.Journal != "" {
		jw, jh, err := Journal(g.Journal)
		if err != nil {
			return nil, err
		}
		figW = jw
		if jh > 0 {
			figH = jh
		}
	}
	if figW < 0 || figH < 0 || g.RefWidth < 0 || g.RefHeight < 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "figure and reference dimensions must not be negative")
	}

	wgaps := sum(wspace)
	hgaps := sum(hspace)

	// Reference cell dimensions, from fixed figure sizes when given.
	var refW, refH vg.Length
	switch {
	case figW > 0:
		inner := figW - left - right - wgaps
		if inner <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "figure width %v leaves no room for subplots", figW)
		}
		refW = inner * vg.Length(wr[refCol]/floatSum(wr))
	case g.RefWidth > 0:
		refW = g.RefWidth
	}
	switch {
	case figH > 0:
		inner := figH - top - bottom - hgaps
		if inner <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "figure height %v leaves no room for subplots", figH)
		}
		refH = inner * vg.Length(hr[refRow]/floatSum(hr))
	case g.RefHeight > 0:
		refH = g.RefHeight
	}
	switch {
	case refW == 0 && refH == 0:
		refW = DefaultRefWidth
		refH = refW / vg.Length(aspect)
	case refH == 0:
		refH = refW / vg.Length(aspect)
	case refW == 0:
		refW = refH * vg.Length(aspect)
	}

	// Cell sizes scale off the reference cell through the ratios.
	widths := make([]vg.Length, g.Cols)
	for i, r := range wr {
		widths[i] = refW * vg.Length(r/wr[refCol])
	}
	heights := make([]vg.Length, g.Rows)
	for i, r := range hr {
		heights[i] = refH * vg.Length(r/hr[refRow])
	}

	geo := &Geometry{
		Width:  left + right + wgaps + sum(widths),
		Height: top + bottom + hgaps + sum(heights),
		rows:   g.Rows,
		cols:   g.Cols,
		cells:  make([]vg.Rectangle, g.Rows*g.Cols),
	}

	yMax := geo.Height - top
	for r := 0; r < g.Rows; r++ {
		x := left
		for c := 0; c < g.Cols; c++ {
			geo.cells[r*g.Cols+c] = vg.Rectangle{
				Min: vg.Point{X: x, Y: yMax - heights[r]},
				Max: vg.Point{X: x + widths[c], Y: yMax},
			}
			x += widths[c]
			if c < g.Cols-1 {
				x += wspace[c]
			}
		}
		yMax -= heights[r]
		if r < g.Rows-1 {
			yMax -= hspace[r]
		}
	}
	return geo, nil
}

// resolveRatios validates a ratio array and fills in equal ratios when
// nil.
func resolveRatios(kind string, ratios []float64, n int) ([]float64, error) {
	if ratios == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	if len(ratios) != n {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "%d %s ratios given, grid has %d cells along that axis", len(ratios), kind, n)
	}
	for _, r := range ratios {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "%s ratios must be positive, got %g", kind, r)
		}
	}
	return ratios, nil
}

// resolveSpaces validates a spacing array and fills Auto entries with
// the default gap.
func resolveSpaces(kind string, spaces []vg.Length, n int) ([]vg.Length, error) {
	out := make([]vg.Length, n)
	if spaces == nil {
		for i := range out {
			out[i] = DefaultSpace
		}
		return out, nil
	}
	if len(spaces) != n {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "%d %s values given, grid has %d gaps along that axis", len(spaces), kind, n)
	}
	for i, s := range spaces {
		switch {
		case math.IsNaN(float64(s)):
			out[i] = DefaultSpace
		case s < 0:
			return nil, errors.New(errors.ErrCodeInvalidLayout, "%s values must not be negative, got %v", kind, s)
		default:
			out[i] = s
		}
	}
	return out, nil
}

// resolveMargin fills an Auto margin with the default.
func resolveMargin(kind string, m vg.Length) (vg.Length, error) {
	if math.IsNaN(float64(m)) {
		return DefaultMargin, nil
	}
	if m < 0 {
		return 0, errors.New(errors.ErrCodeInvalidLayout, "%s margin must not be negative, got %v", kind, m)
	}
	return m, nil
}

func sum(vals []vg.Length) vg.Length {
	var s vg.Length
	for _, v := range vals {
		s += v
	}
	return s
}

func floatSum(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s
}
