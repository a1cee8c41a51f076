package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sqlkit/sqlformat/pkg/mysqltokens"
	"github.com/sqlkit/sqlformat/pkg/types"
	"github.com/sqlkit/sqlformat/pkg/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <sql-file>",
	Short: "Validate SQL statements with heuristic checks",
	Long: `Validate SQL statements in a file (or stdin) and report likely
mistakes: keyword typos, invalid leading commands, missing clauses,
unbalanced parentheses, and unmatched quotes.

The checks are heuristic. A clean report does not guarantee the SQL
would execute, and flagged SQL may still be valid for some engines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// Flags for validate command
	validateCmd.Flags().StringP("dialect", "d", "generic", "SQL dialect (generic, mysql)")
	validateCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	validateCmd.Flags().Bool("fail-on-error", false, "exit with non-zero code if errors are found")
	validateCmd.Flags().Bool("fail-on-warning", false, "exit with non-zero code if warnings are found")

	// Bind flags to viper
	_ = viper.BindPFlag("dialect", validateCmd.Flags().Lookup("dialect"))
	_ = viper.BindPFlag("output", validateCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("fail-on-error", validateCmd.Flags().Lookup("fail-on-error"))
	_ = viper.BindPFlag("fail-on-warning", validateCmd.Flags().Lookup("fail-on-warning"))
}

func runValidate(cmd *cobra.Command, args []string) error {
	setupLogging()

	sql, err := readInput(args)
	if err != nil {
		return errors.Wrap(err, "failed to read SQL input")
	}
	slog.Debug("read SQL input", "size", len(sql))

	v, err := validatorForDialect(viper.GetString("dialect"))
	if err != nil {
		return err
	}

	report := v.Validate(sql)

	outputFormat := viper.GetString("output")
	if err := outputReport(report, outputFormat); err != nil {
		return err
	}

	if len(report.Errors) > 0 && viper.GetBool("fail-on-error") {
		os.Exit(1)
	}
	if len(report.Warnings) > 0 && viper.GetBool("fail-on-warning") {
		os.Exit(1)
	}

	return nil
}

func validatorForDialect(dialect string) (*validator.Validator, error) {
	switch strings.ToLower(dialect) {
	case "", "generic":
		return validator.New(), nil
	case "mysql":
		return validator.New(validator.WithTokenizer(mysqltokens.New())), nil
	default:
		return nil, errors.Errorf("unsupported SQL dialect: %s", dialect)
	}
}

func outputReport(report *types.ValidationReport, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(report)
	case "text":
		return outputReportText(report)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

func outputReportText(report *types.ValidationReport) error {
	if report.IsValid && len(report.Warnings) == 0 {
		fmt.Println("No issues found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", "Message"})
	for _, msg := range report.Errors {
		t.AppendRow(table.Row{"ERROR", msg})
	}
	for _, msg := range report.Warnings {
		t.AppendRow(table.Row{"WARNING", msg})
	}
	t.Render()

	fmt.Printf("Summary: %d error(s), %d warning(s)\n", len(report.Errors), len(report.Warnings))
	return nil
}
