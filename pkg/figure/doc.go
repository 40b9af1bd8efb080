// Package figure sizes and arranges subplot grids on a gonum plot
// canvas.
//
// # Overview
//
// The central type is Grid, a declarative description of a subplot
// layout: row and column counts, relative width and height ratios,
// inter-subplot spacing, margins and a sizing rule. Solve turns a Grid
// into a Geometry holding the final figure dimensions and one
// vg.Rectangle per cell, and Geometry.Canvases crops a draw.Canvas
// into per-cell canvases ready for plot.Plot.Draw.
//
// # Sizing
//
// Figure size follows from a reference cell: set RefWidth (and
// optionally RefAspect or RefHeight) and the remaining cells scale
// through the ratio arrays. Fixing FigWidth or FigHeight instead
// solves backwards for the cell size. Journal presets pin the figure
// width, and sometimes the height, to a publisher's column spec.
//
// The companion features mirror common multi-panel conventions:
// Tight recomputes automatic gaps from per-cell decoration pads, ABC
// produces sequential panel labels, and Share unifies axis limits and
// prunes interior labels across a grid of plots.
package figure
