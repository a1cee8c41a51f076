package validator

import (
	"fmt"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*UnmatchedParenthesesRule)(nil)

func init() {
	register(&UnmatchedParenthesesRule{})
}

// UnmatchedParenthesesRule reports parenthesis imbalance in a statement.
//
// A count mismatch yields exactly one finding stating the direction and
// magnitude of the imbalance. When counts match but order does not (")("),
// the stack scan reports each unmatched closer at its own position.
type UnmatchedParenthesesRule struct{}

// Type implements Rule.
func (*UnmatchedParenthesesRule) Type() string { return TypeUnmatchedParentheses }

// Check implements Rule.
func (*UnmatchedParenthesesRule) Check(stmt *types.Statement) []types.Finding {
	scan := scanParens(stmt.Text)
	if scan.balanced() {
		return nil
	}

	if scan.openCount != scan.closeCount {
		var summary string
		token := "("
		if scan.openCount > scan.closeCount {
			summary = fmt.Sprintf("Statement %d: %d unmatched opening parenthesis(es)",
				stmt.Index, scan.openCount-scan.closeCount)
		} else {
			summary = fmt.Sprintf("Statement %d: %d unmatched closing parenthesis(es)",
				stmt.Index, scan.closeCount-scan.openCount)
			token = ")"
		}
		position := 0
		if len(scan.unmatchedOpeners) > 0 {
			position = scan.unmatchedOpeners[0]
		} else if len(scan.unmatchedClosers) > 0 {
			position = scan.unmatchedClosers[0]
		}
		return []types.Finding{{
			Severity: types.SeverityError,
			Type:     TypeUnmatchedParentheses,
			Message: fmt.Sprintf("Unmatched parentheses: %d opening, %d closing",
				scan.openCount, scan.closeCount),
			Position: position,
			Token:    token,
			Summary:  summary,
		}}
	}

	// Counts agree but the scan still found closers with no opener, e.g.
	// ")(": one finding per misordered closer.
	findings := make([]types.Finding, 0, len(scan.unmatchedClosers))
	for _, pos := range scan.unmatchedClosers {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeUnmatchedParen,
			Message:  "Unmatched closing parenthesis",
			Position: pos,
			Token:    ")",
			Summary:  fmt.Sprintf("Statement %d: Unmatched closing parenthesis", stmt.Index),
		})
	}
	return findings
}
