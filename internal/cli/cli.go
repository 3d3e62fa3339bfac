// Package cli implements the stringify command.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/stringify/internal/logging"
)

// Build metadata, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

type app struct {
	verbosity int
	logger    zerolog.Logger
}

// NewRootCmd builds the command tree. Output and input follow the cobra
// command's Out/Err/In, so tests can redirect them.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "stringify",
		Short: "Render data files as indented debug text",
		Long: `stringify reads YAML, TOML or JSON documents and prints them in the
stringify notation: Label { key : value, } for maps and Label [ item, ] for
sequences, with indentation controlled by a stylesheet.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.Setup(cmd.ErrOrStderr(), a.verbosity)
			a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(a.dumpCmd())
	root.AddCommand(a.stylesCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stringify version %s (commit %s)\n", version, commit)
			return err
		},
	}
}
