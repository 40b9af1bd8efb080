// Package cli implements the panplot command-line interface.
//
// This package provides commands for inspecting the scale, formatter and
// ticker registries, sampling transforms numerically, and rendering
// demonstration figures. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - scales / formatters / tickers: List the registered names
//   - sample: Print a forward/inverse table for a scale
//   - demo: Render a demonstration figure to SVG, PDF, PNG, EPS or TIFF
//   - preview: Browse scales interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context, as is the runtime configuration
// loaded from the --rc flag.
package cli
