package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// keywordConnectors are keywords that may legally follow another keyword.
var keywordConnectors = map[string]bool{
	"BY":    true,
	"ON":    true,
	"AS":    true,
	"OR":    true,
	"AND":   true,
	"NOT":   true,
	"IN":    true,
	"IS":    true,
	"NULL":  true,
	"JOIN":  true,
	"OUTER": true,
	"INNER": true,
	"LEFT":  true,
	"RIGHT": true,
	"FULL":  true,
}

var _ Rule = (*UnexpectedKeywordRule)(nil)

func init() {
	register(&UnexpectedKeywordRule{})
}

// UnexpectedKeywordRule flags two consecutive keyword tokens where the
// second is not a legal keyword-after-keyword connector. This is a pure
// heuristic with a known false-positive surface (INSERT INTO, DELETE FROM,
// SELECT DISTINCT); see the package tests for the documented cases.
type UnexpectedKeywordRule struct{}

// Type implements Rule.
func (*UnexpectedKeywordRule) Type() string { return TypeUnexpectedKeyword }

// Check implements Rule.
func (*UnexpectedKeywordRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	var findings []types.Finding

	for i := 1; i < len(tokens); i++ {
		tok, prev := tokens[i], tokens[i-1]
		if !tok.Kind.IsKeyword() || !prev.Kind.IsKeyword() {
			continue
		}
		if keywordConnectors[strings.ToUpper(tok.Text)] {
			continue
		}
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeUnexpectedKeyword,
			Message:  fmt.Sprintf("Unexpected keyword %q after %q", tok.Text, prev.Text),
			Position: i,
			Token:    tok.Text,
			Summary:  fmt.Sprintf("Statement %d: Unexpected keyword %q after %q", stmt.Index, tok.Text, prev.Text),
		})
	}

	return findings
}
