package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sqlkit/sqlformat/pkg/formatter"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <sql-file>",
	Short: "Format SQL statements",
	Long: `Format SQL statements from a file (or stdin) and print the result
to stdout.

Formatting options come from a named preset, overridden by any flags
set explicitly on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	// Flags for fmt command
	fmtCmd.Flags().StringP("preset", "p", "", "formatting preset (standard, compact, minimal, legacy)")
	fmtCmd.Flags().String("keyword-case", "", "keyword case (upper, lower, capitalize)")
	fmtCmd.Flags().String("identifier-case", "", "identifier case (upper, lower, capitalize)")
	fmtCmd.Flags().Int("indent-width", 0, "number of spaces per indent level")
	fmtCmd.Flags().Bool("indent-tabs", false, "indent with tabs instead of spaces")
	fmtCmd.Flags().Int("wrap-after", 0, "wrap lines longer than this many characters")
	fmtCmd.Flags().Bool("comma-first", false, "place commas at the start of wrapped lines")
	fmtCmd.Flags().Bool("strip-comments", false, "remove comments from the output")
}

func runFmt(cmd *cobra.Command, args []string) error {
	setupLogging()

	sql, err := readInput(args)
	if err != nil {
		return errors.Wrap(err, "failed to read SQL input")
	}

	opts, err := fmtOptions(cmd)
	if err != nil {
		return err
	}
	slog.Debug("formatting SQL", "size", len(sql), "options", fmt.Sprintf("%+v", opts))

	result := formatter.New().Format(sql, opts)
	if !result.Success {
		return errors.Errorf("formatting failed: %s", result.Error)
	}

	fmt.Println(result.FormattedSQL)
	return nil
}

// fmtOptions resolves the effective formatting options: the preset (or
// the configured defaults) overlaid with explicitly set flags.
func fmtOptions(cmd *cobra.Command) (formatter.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return formatter.Options{}, err
	}

	opts := cfg.Format
	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		preset, ok := cfg.Preset(name)
		if !ok {
			return formatter.Options{}, errors.Errorf("unknown preset: %s", name)
		}
		opts = preset
	}

	if cmd.Flags().Changed("keyword-case") {
		opts.KeywordCase, _ = cmd.Flags().GetString("keyword-case")
	}
	if cmd.Flags().Changed("identifier-case") {
		opts.IdentifierCase, _ = cmd.Flags().GetString("identifier-case")
	}
	if cmd.Flags().Changed("indent-width") {
		opts.IndentWidth, _ = cmd.Flags().GetInt("indent-width")
	}
	if cmd.Flags().Changed("indent-tabs") {
		opts.IndentTabs, _ = cmd.Flags().GetBool("indent-tabs")
	}
	if cmd.Flags().Changed("wrap-after") {
		opts.WrapAfter, _ = cmd.Flags().GetInt("wrap-after")
	}
	if cmd.Flags().Changed("comma-first") {
		opts.CommaFirst, _ = cmd.Flags().GetBool("comma-first")
	}
	if cmd.Flags().Changed("strip-comments") {
		opts.StripComments, _ = cmd.Flags().GetBool("strip-comments")
	}

	return opts, nil
}
