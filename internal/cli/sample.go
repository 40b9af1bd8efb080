package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/panplot/panplot/pkg/errors"
	"github.com/panplot/panplot/pkg/scale"
	"github.com/panplot/panplot/pkg/tick"
)

// sampleOpts holds the command-line flags for the sample command.
type sampleOpts struct {
	min       float64 // lower end of the sampled interval
	max       float64 // upper end of the sampled interval
	steps     int     // number of sample points
	formatter string  // tick formatter spec for the label column
}

// newSampleCmd creates the sample command, which prints a numeric
// forward/inverse table for a scale without needing a display.
func newSampleCmd() *cobra.Command {
	opts := sampleOpts{min: 0, max: 10, steps: 11}

	cmd := &cobra.Command{
		Use:   "sample <scale> [args...]",
		Short: "Print a forward/inverse table for a scale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scaleArgs, err := parseFloatArgs(args[1:])
			if err != nil {
				return err
			}
			return runSample(cmd, args[0], scaleArgs, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.min, "min", opts.min, "lower end of the sampled interval")
	cmd.Flags().Float64Var(&opts.max, "max", opts.max, "upper end of the sampled interval")
	cmd.Flags().IntVar(&opts.steps, "steps", opts.steps, "number of sample points")
	cmd.Flags().StringVar(&opts.formatter, "formatter", "", "formatter for the label column (default: the scale's own)")

	return cmd
}

// parseFloatArgs converts positional string arguments to floats.
func parseFloatArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "argument %q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

// samplePoints spans [min, max] with n evenly spaced values.
func samplePoints(min, max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "need at least 2 sample points, got %d", n)
	}
	if !(max > min) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sample interval [%g, %g] is empty", min, max)
	}
	return floats.Span(make([]float64, n), min, max), nil
}

func runSample(cmd *cobra.Command, name string, scaleArgs []float64, opts *sampleOpts) error {
	logger := loggerFromContext(cmd.Context())
	cfg := configFromContext(cmd.Context())

	s, err := scale.New(name, scaleArgs...)
	if err != nil {
		return err
	}
	formatter := s.Formatter()
	if opts.formatter != "" {
		formatter, err = tick.NewFormatter(opts.formatter)
		if err != nil {
			return err
		}
	}
	if af, ok := formatter.(*tick.AutoFormatter); ok {
		af.ZeroTrim = cfg.Format.ZeroTrim
		af.Precision = cfg.Format.Precision
	}

	min, max := s.LimitRange(opts.min, opts.max)
	if min != opts.min || max != opts.max {
		logger.Debugf("Clamped interval to the scale's domain: [%g, %g]", min, max)
	}
	points, err := samplePoints(min, max, opts.steps)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Scale ") + StyleHighlight.Render(s.Name()))
	printInfo("%d points over [%g, %g]", opts.steps, min, max)
	tr := s.Transform()
	rows := make([][]string, 0, len(points))
	for _, x := range points {
		fwd := tr.Forward(x)
		rows = append(rows, []string{
			formatFloat(x),
			formatFloat(fwd),
			formatFloat(tr.Inverse(fwd)),
			formatter.Format(x),
		})
	}
	fmt.Println(table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("x", "forward", "inverse", "label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return StyleValue
		}).
		Render())
	return nil
}

// formatFloat renders a table value, keeping NaN visible as a masked
// marker.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
