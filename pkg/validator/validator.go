// Package validator implements the heuristic SQL validation engine.
//
// The engine is a lint pass over tokenized SQL, not a parser: a fixed,
// ordered set of independent rules inspects each statement and emits
// findings. It always terminates with a verdict, converting any internal
// fault into a single "exception" error finding rather than propagating.
//
// # Quick Start
//
//	v := validator.New()
//	report := v.Validate("SELCT * FROM users")
//	if !report.IsValid {
//	    for _, msg := range report.Errors {
//	        fmt.Println(msg)
//	    }
//	}
//
// A Validator is safe for concurrent use by multiple goroutines: every call
// is side-effect-free and the only shared state (the rule registry and the
// keyword-typo table) is read-only for the process lifetime.
package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/splitter"
	"github.com/sqlkit/sqlformat/pkg/tokenizer"
	"github.com/sqlkit/sqlformat/pkg/types"
)

// Validator runs the rule set over SQL input and aggregates findings into a
// ValidationReport.
type Validator struct {
	tokenizer tokenizer.Tokenizer
}

// Option customizes a Validator.
type Option func(*Validator)

// WithTokenizer replaces the built-in lexer with a dialect-specific
// tokenizer satisfying the same contract.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(v *Validator) {
		if tok != nil {
			v.tokenizer = tok
		}
	}
}

// New creates a Validator using the built-in dialect-neutral lexer.
func New(opts ...Option) *Validator {
	v := &Validator{tokenizer: tokenizer.NewLexer()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every rule over every statement of sql and returns the
// aggregated report. It never returns nil and never panics: an unexpected
// internal fault degrades to an invalid report carrying a single
// "exception" finding.
func (v *Validator) Validate(sql string) (report *types.ValidationReport) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			slog.Error("validation PANIC RECOVER", "error", panicErr)
			report = exceptionReport(panicErr)
		}
	}()

	if strings.TrimSpace(sql) == "" {
		return &types.ValidationReport{
			IsValid:      false,
			Errors:       []string{"Empty SQL provided"},
			Warnings:     []string{},
			ErrorDetails: []types.Finding{},
		}
	}

	var findings []types.Finding
	for _, stmt := range v.splitStatements(sql) {
		findings = append(findings, checkStatement(stmt)...)
	}

	return buildReport(findings)
}

// splitStatements partitions the input and tokenizes each fragment into a
// Statement with its 1-based index.
func (v *Validator) splitStatements(sql string) []*types.Statement {
	fragments := splitter.Split(sql)
	statements := make([]*types.Statement, 0, len(fragments))
	for i, frag := range fragments {
		statements = append(statements, &types.Statement{
			Text:       frag.Text,
			Index:      i + 1,
			Tokens:     v.tokenizer.Tokenize(frag.Text),
			Terminated: frag.Terminated,
		})
	}
	return statements
}

// checkStatement runs the registered rules in their fixed order so report
// output is stable. Findings from overlapping rules are all retained.
func checkStatement(stmt *types.Statement) []types.Finding {
	var findings []types.Finding
	for _, ruleType := range ruleOrder {
		rule, ok := lookup(ruleType)
		if !ok {
			slog.Warn("rule not registered", "type", ruleType)
			continue
		}
		findings = append(findings, rule.Check(stmt)...)
	}
	return findings
}

// buildReport assembles the final report: summary strings in rule-emission
// order, structured details for error-severity findings only.
func buildReport(findings []types.Finding) *types.ValidationReport {
	report := &types.ValidationReport{
		Errors:       []string{},
		Warnings:     []string{},
		ErrorDetails: []types.Finding{},
	}

	for _, f := range findings {
		switch f.Severity {
		case types.SeverityError:
			report.Errors = append(report.Errors, f.Summary)
			report.ErrorDetails = append(report.ErrorDetails, f)
		case types.SeverityWarning:
			report.Warnings = append(report.Warnings, f.Summary)
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

func exceptionReport(panicErr any) *types.ValidationReport {
	desc := fmt.Sprintf("%v", panicErr)
	return &types.ValidationReport{
		IsValid:  false,
		Errors:   []string{fmt.Sprintf("Validation error: %s", desc)},
		Warnings: []string{},
		ErrorDetails: []types.Finding{{
			Severity: types.SeverityError,
			Type:     TypeException,
			Message:  desc,
			Position: 0,
			Summary:  fmt.Sprintf("Validation error: %s", desc),
		}},
	}
}
