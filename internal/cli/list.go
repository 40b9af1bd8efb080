package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/panplot/panplot/pkg/scale"
	"github.com/panplot/panplot/pkg/tick"
)

// scaleDescriptions gives the one-line summary shown by the scales
// command, keyed by registry name.
var scaleDescriptions = map[string]string{
	"linear":   "identity transform",
	"log":      "logarithm, base configurable",
	"symlog":   "symmetric log with a linear region around zero",
	"inverse":  "reciprocal, 1/x",
	"power":    "power law x^c",
	"exp":      "exponential C·a^(bx), or its logarithm",
	"cutoff":   "piecewise linear compression or discrete jump",
	"mercator": "Mercator projection latitude",
	"sine":     "sine-weighted (area preserving) latitude",
}

// presetDescriptions summarizes the preset scales.
var presetDescriptions = map[string]string{
	"quadratic": "power with exponent 2",
	"cubic":     "power with exponent 3",
	"quartic":   "power with exponent 4",
	"height":    "height in km against standard-atmosphere pressure",
	"pressure":  "pressure against standard-atmosphere height",
	"db":        "decibels against power ratio",
	"idb":       "power ratio against decibels",
	"np":        "nepers against amplitude ratio",
	"inp":       "amplitude ratio against nepers",
}

// renderNameTable renders a two-column name/description table.
func renderNameTable(names []string, desc map[string]string) string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, desc[name]})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleDim
		}).
		Render()
}

// newScalesCmd creates the scales command listing the scale registry.
func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the registered axis scales and presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Scales"))
			fmt.Println(renderNameTable(scale.Names(), scaleDescriptions))
			printNewline()
			fmt.Println(StyleTitle.Render("Presets"))
			fmt.Println(renderNameTable(scale.Presets(), presetDescriptions))
			printDetail("use: panplot sample <scale> [args...]")
		},
	}
}

// formatterDescriptions summarizes the formatter registry. Names
// sharing a constructor share a line.
var formatterDescriptions = map[string]string{
	"auto":    "trimmed decimal labels (default)",
	"default": "alias for auto",
	"simple":  "fixed precision with a unicode minus",
	"none":    "suppress all labels",
	"null":    "alias for none",
	"frac":    "rational fractions",
	"pi":      "fractions of π",
	"e":       "fractions of Euler's number",
	"deg":     "degree sign suffix",
	"deglon":  "degrees with W/E suffix",
	"deglat":  "degrees with S/N suffix",
	"lon":     "W/E suffix, no degree sign",
	"lat":     "S/N suffix, no degree sign",
}

// newFormattersCmd creates the formatters command.
func newFormattersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formatters",
		Short: "List the registered tick formatters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Formatters"))
			fmt.Println(renderNameTable(tick.FormatterNames(), formatterDescriptions))
			printDetail("any spec containing %% becomes an fmt.Sprintf formatter, e.g. %%.2f")
		},
	}
}

// tickerDescriptions summarizes the ticker registry.
var tickerDescriptions = map[string]string{
	"auto":     "automatic placement (default)",
	"none":     "no ticks",
	"null":     "alias for none",
	"fixed":    "ticks at the given values",
	"multiple": "ticks on multiples of a step",
	"index":    "ticks every step from an offset",
	"linear":   "n evenly spaced ticks, endpoints included",
	"log":      "ticks on powers of a base",
	"symlog":   "ticks mirrored around zero on a log ladder",
}

// newTickersCmd creates the tickers command.
func newTickersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tickers",
		Short: "List the registered tickers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(StyleTitle.Render("Tickers"))
			fmt.Println(renderNameTable(tick.TickerNames(), tickerDescriptions))
		},
	}
}
