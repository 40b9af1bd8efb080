package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/panplot/panplot/pkg/rc"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization
// with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the panplot CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads
// the runtime configuration from the --rc flag, configures logging
// based on --verbose, and executes the command tree. Logger and config
// are attached to the context and accessible to all commands via
// loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		rcPath  string
	)

	root := &cobra.Command{
		Use:          "panplot",
		Short:        "panplot renders and inspects axis scales, tick formatters and subplot layouts",
		Long:         `panplot is a CLI companion to the panplot plotting library: it lists the registered axis scales, tick formatters and tickers, samples transforms numerically, renders demonstration figures, and previews scales interactively.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := rc.Load(rcPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("panplot %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&rcPath, "rc", "", "path to a panplotrc TOML file")

	root.AddCommand(newScalesCmd())
	root.AddCommand(newFormattersCmd())
	root.AddCommand(newTickersCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newPreviewCmd())

	return root.ExecuteContext(ctx)
}
