package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sqlkit/sqlformat/pkg/formatter"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <sql-file>",
	Short: "Minify SQL statements",
	Long: `Minify SQL statements from a file (or stdin): comments are removed
and all runs of whitespace collapse to single spaces.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMinify,
}

func init() {
	rootCmd.AddCommand(minifyCmd)

	minifyCmd.Flags().Bool("stats", false, "print size statistics to stderr")
}

func runMinify(cmd *cobra.Command, args []string) error {
	setupLogging()

	sql, err := readInput(args)
	if err != nil {
		return errors.Wrap(err, "failed to read SQL input")
	}

	result := formatter.New().Minify(sql)
	fmt.Println(result.MinifiedSQL)

	slog.Debug("minified SQL",
		"original_length", result.OriginalLength,
		"minified_length", result.MinifiedLength)

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d -> %d bytes (%.1f%% smaller)\n",
			result.OriginalLength, result.MinifiedLength, result.CompressionRatio)
	}

	return nil
}
