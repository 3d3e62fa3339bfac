package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/bjaus/stringify"
	"github.com/bjaus/stringify/internal/logging"
	"github.com/bjaus/stringify/stylesheet"
)

type dumpOptions struct {
	format   string
	styles   string
	indent   string
	maxWidth int
}

func (a *app) dumpCmd() *cobra.Command {
	opts := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Render a YAML, TOML or JSON document",
		Long: `Render a document read from file, or from stdin when no file is given.
The input format comes from --format, then from the file extension; stdin
defaults to YAML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd, args, opts)
		},
	}
	formats := make([]string, 0, len(stylesheet.Formats()))
	for _, f := range stylesheet.Formats() {
		formats = append(formats, f.String())
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format ("+strings.Join(formats, "|")+")")
	cmd.Flags().StringVarP(&opts.styles, "styles", "s", "", "Stylesheet file (yaml, toml or json)")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "Indentation unit for every role, overriding the stylesheet")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "Truncate output lines to this many columns (0 = no limit)")
	return cmd
}

// ellipsis ends every line cut by --max-width.
const ellipsis = "..."

func (a *app) runDump(cmd *cobra.Command, args []string, opts *dumpOptions) error {
	logger := logging.Component(a.logger, "dump")

	minWidth := runewidth.StringWidth(ellipsis) + 1
	if opts.maxWidth < 0 || (opts.maxWidth > 0 && opts.maxWidth < minWidth) {
		return fmt.Errorf("invalid --max-width %d: must be 0 or at least %d", opts.maxWidth, minWidth)
	}

	format, data, err := readInput(cmd.InOrStdin(), args, opts.format)
	if err != nil {
		return err
	}
	logger.Debug().Str("format", format.String()).Int("bytes", len(data)).Msg("Input read")

	var doc any
	if err := stylesheet.Unmarshal(data, format, &doc); err != nil {
		return fmt.Errorf("decode %s input: %w", format, err)
	}
	value, err := stringify.Of(doc)
	if err != nil {
		return err
	}

	styles := stylesheet.Default()
	if opts.styles != "" {
		if styles, err = stylesheet.Load(opts.styles); err != nil {
			return err
		}
		logger.Debug().Str("path", opts.styles).Strs("roles", styles.Roles()).Msg("Stylesheet loaded")
	}
	if cmd.Flags().Changed("indent") {
		styles = withIndent(styles, opts.indent)
	}

	text, err := stringify.Sprint(value, styles)
	if err != nil {
		return err
	}
	if opts.maxWidth > 0 {
		text = truncateLines(text, opts.maxWidth)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func readInput(stdin io.Reader, args []string, flag string) (stylesheet.Format, []byte, error) {
	var (
		format stylesheet.Format
		err    error
	)
	if flag != "" {
		if format, err = stylesheet.ParseFormat(flag); err != nil {
			return "", nil, err
		}
	}
	if len(args) == 0 {
		if format == "" {
			format = stylesheet.YAML
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return format, data, nil
	}
	if format == "" {
		if format, err = stylesheet.FormatFromPath(args[0]); err != nil {
			return "", nil, err
		}
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	return format, data, nil
}

// withIndent replaces the unit of every role that has one. Roles with an
// empty unit stay silent.
func withIndent(styles stringify.Styles, unit string) stringify.Styles {
	all := styles.All()
	for role, s := range all {
		if s.Indent != "" {
			all[role] = s.WithIndent(unit)
		}
	}
	return stringify.StylesFrom(all)
}

// truncateLines cuts each line to max display columns, ending cut lines
// with the ellipsis. max must leave room for the ellipsis.
func truncateLines(text string, max int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, max, ellipsis)
	}
	return strings.Join(lines, "\n")
}
