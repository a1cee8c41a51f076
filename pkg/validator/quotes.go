package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*UnmatchedQuoteRule)(nil)

func init() {
	register(&UnmatchedQuoteRule{})
}

// UnmatchedQuoteRule reports odd quote counts, one finding per quote kind.
// Parity checking cannot tell an escaped quote from a terminator, so the
// findings are advisory in the presence of escapes.
type UnmatchedQuoteRule struct{}

// Type implements Rule.
func (*UnmatchedQuoteRule) Type() string { return TypeUnmatchedQuote }

// Check implements Rule.
func (*UnmatchedQuoteRule) Check(stmt *types.Statement) []types.Finding {
	var findings []types.Finding

	if _, unmatched := quoteParity(stmt.Text, '\''); unmatched {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeUnmatchedQuote,
			Message:  "Unmatched single quote",
			Position: strings.LastIndexByte(stmt.Text, '\''),
			Token:    "'",
			Summary:  fmt.Sprintf("Statement %d: Unmatched single quote", stmt.Index),
		})
	}

	if _, unmatched := quoteParity(stmt.Text, '"'); unmatched {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeUnmatchedQuote,
			Message:  "Unmatched double quote",
			Position: strings.LastIndexByte(stmt.Text, '"'),
			Token:    `"`,
			Summary:  fmt.Sprintf("Statement %d: Unmatched double quote", stmt.Index),
		})
	}

	return findings
}
