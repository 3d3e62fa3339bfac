package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/stringify/stylesheet"
)

func (a *app) stylesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the default stylesheet",
		Long: `Print the style table dump uses when --styles is not given. Save the
output to a file, edit it, and pass it back with dump --styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := stylesheet.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := stylesheet.Marshal(stylesheet.Default(), f)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("format", f.String()).Msg("Writing default stylesheet")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(stylesheet.YAML), "Output format (yaml|toml|json)")
	return cmd
}
