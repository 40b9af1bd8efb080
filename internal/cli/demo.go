package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/panplot/panplot/pkg/errors"
	"github.com/panplot/panplot/pkg/figure"
	"github.com/panplot/panplot/pkg/rc"
	"github.com/panplot/panplot/pkg/scale"
	"github.com/panplot/panplot/pkg/tick"
	"github.com/panplot/panplot/pkg/unit"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	output    string   // output file path (or base path for multiple formats)
	scaleName string   // scale to demonstrate
	formats   []string // output formats: svg, png, pdf, eps, tif
	ticker    string   // ticker override
	formatter string   // formatter override
	grid      bool     // render a 2x2 grid of scales instead
	journal   string   // journal size preset
	width     string   // figure width with a unit suffix, e.g. 12cm
	min, max  float64  // data range of the demonstration curve
}

// gridScales are the four scales shown by the grid demo.
var gridScales = []string{"linear", "log", "symlog", "quadratic"}

// newDemoCmd creates the demo command for rendering demonstration
// figures. A single demo plots sin(x) under the chosen scale; --grid
// renders a 2x2 panel of scales with a-b-c labels and shared axes.
func newDemoCmd() *cobra.Command {
	var formatsStr string
	opts := demoOpts{scaleName: "linear", min: 0.1, max: 10}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demonstration figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runDemo(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.scaleName, "scale", "s", opts.scaleName, "scale to demonstrate")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, eps, tif (comma-separated)")
	cmd.Flags().StringVar(&opts.ticker, "ticker", "", "ticker override, e.g. multiple or log")
	cmd.Flags().StringVar(&opts.formatter, "formatter", "", "formatter override, e.g. deglat or %.2f")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "render a 2x2 grid of scales with panel labels")
	cmd.Flags().StringVar(&opts.journal, "journal", "", "journal size preset, e.g. nat1")
	cmd.Flags().StringVar(&opts.width, "width", "", "figure width with an optional unit, e.g. 12cm or 350pt (default: inches)")
	cmd.Flags().Float64Var(&opts.min, "min", opts.min, "lower end of the demonstrated range")
	cmd.Flags().Float64Var(&opts.max, "max", opts.max, "upper end of the demonstrated range")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "eps": true, "tif": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be 'svg', 'png', 'pdf', 'eps' or 'tif')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output path and a
// fallback name. If output carries a known format extension, the
// extension is stripped so per-format names can be attached.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func runDemo(cmd *cobra.Command, opts *demoOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	prog := newProgress(logger)

	grid := figure.NewGrid(1, 1)
	if opts.grid {
		grid = figure.NewGrid(2, 2)
	}
	grid.RefWidth = cfg.RefWidth()
	grid.RefAspect = cfg.Figure.RefAspect
	grid.Journal = opts.journal
	if opts.width != "" {
		parser := unit.Parser{FontSize: cfg.FontSize(), DPI: cfg.Unit.DPI}
		w, err := parser.Length(opts.width)
		if err != nil {
			return err
		}
		grid.FigWidth = w
	}
	geo, err := grid.Solve()
	if err != nil {
		return err
	}
	logger.Debugf("Figure geometry: %.0f x %.0f points", float64(geo.Width), float64(geo.Height))

	var plots []*plot.Plot
	if opts.grid {
		plots, err = demoGridPlots(opts, cfg)
	} else {
		var p *plot.Plot
		p, err = demoPlot(opts.scaleName, "", opts)
		plots = []*plot.Plot{p}
	}
	if err != nil {
		return err
	}

	base := basePath(opts.output, "panplot_demo")
	for _, format := range opts.formats {
		path := base + "." + format
		if err := writeFigure(plots, geo, format, path); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
		printFile(path)
	}
	printSuccess("Rendered %d panel(s) in %d format(s)", len(plots), len(opts.formats))
	prog.done("Demo complete")
	return nil
}

// demoPlot builds one demonstration plot: a sine curve on an axis
// warped by the named scale.
func demoPlot(name, title string, opts *demoOpts) (*plot.Plot, error) {
	s, err := scale.New(name)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	if title != "" {
		p.Title.Text = title
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "sin(x)"
	p.X.Min, p.X.Max = opts.min, opts.max
	p.Y.Min, p.Y.Max = -1.2, 1.2
	s.Apply(&p.X)

	if opts.ticker != "" || opts.formatter != "" {
		ticker := s.Ticker()
		formatter := s.Formatter()
		if opts.ticker != "" {
			if ticker, err = tick.NewTicker(opts.ticker); err != nil {
				return nil, err
			}
		}
		if opts.formatter != "" {
			if formatter, err = tick.NewFormatter(opts.formatter); err != nil {
				return nil, err
			}
		}
		p.X.Tick.Marker = tick.Labeled{Ticker: ticker, Formatter: formatter}
	}

	curve := plotter.NewFunction(math.Sin)
	curve.Samples = 500
	p.Add(curve, plotter.NewGrid())
	return p, nil
}

// demoGridPlots builds the four-panel grid demo with a-b-c labels and
// the configured axis sharing.
func demoGridPlots(opts *demoOpts, cfg rc.Config) ([]*plot.Plot, error) {
	anchorX, _, err := figure.ABCAnchor(cfg.ABC.Location)
	if err != nil {
		return nil, err
	}
	align := draw.XCenter
	switch {
	case anchorX == 0:
		align = draw.XLeft
	case anchorX == 1:
		align = draw.XRight
	}

	plots := make([]*plot.Plot, len(gridScales))
	for i, name := range gridScales {
		label, err := figure.ABC(i+1, cfg.ABC.Style)
		if err != nil {
			return nil, err
		}
		p, err := demoPlot(name, fmt.Sprintf("%s %s", label, name), opts)
		if err != nil {
			return nil, err
		}
		p.Title.TextStyle.XAlign = align
		plots[i] = p
	}
	shareX, err := figure.ParseShareLevel(cfg.Share.X)
	if err != nil {
		return nil, err
	}
	shareY, err := figure.ParseShareLevel(cfg.Share.Y)
	if err != nil {
		return nil, err
	}
	err = figure.Share(plots, 2, 2, figure.ShareOptions{
		X: shareX, Y: shareY,
		SpanX: cfg.Share.SpanX, SpanY: cfg.Share.SpanY,
	})
	return plots, err
}

// writeFigure renders the plots onto a fresh canvas, one per grid
// cell, and writes it in the given format.
func writeFigure(plots []*plot.Plot, geo *figure.Geometry, format, path string) error {
	c, err := draw.NewFormattedCanvas(geo.Width, geo.Height, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating %s canvas", format)
	}
	for i, cell := range geo.Canvases(draw.New(c)) {
		if i >= len(plots) || plots[i] == nil {
			continue
		}
		plots[i].Draw(cell)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
