package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/printworks/rainbowpress/pkg/buildinfo"
	"github.com/printworks/rainbowpress/pkg/errors"
)

// newRootCmd builds the rainbowpress root command with all subcommands
// (generate, papers, tui) attached.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "rainbowpress",
		Short:         "rainbowpress lays out fingerprint rainbows for printing",
		Long:          `rainbowpress computes a radial layout of 100 elliptical fingerprints arranged in seven concentric half-circle bands and renders the result onto a printable page (SVG, PNG, PDF, or JSON).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPapersCmd())
	root.AddCommand(newTUICmd())

	return root
}

// Execute runs the rainbowpress CLI and returns an error if any command
// fails. This is the main entry point for the CLI application. Errors
// are printed styled, with the code prefix stripped for the terminal.
func Execute() error {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	return nil
}
