package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*MissingOperatorRule)(nil)

func init() {
	register(&MissingOperatorRule{})
}

// MissingOperatorRule warns when two consecutive value tokens (identifier,
// string, or number) appear without an operator or connector between them.
// Warning severity only; aliasing styles like "SELECT name n" trip it, which
// is why it never affects validity.
type MissingOperatorRule struct{}

// Type implements Rule.
func (*MissingOperatorRule) Type() string { return TypeMissingOperator }

// Check implements Rule.
func (*MissingOperatorRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	var findings []types.Finding

	for i := 1; i < len(tokens); i++ {
		tok, prev := tokens[i], tokens[i-1]
		if !isValueToken(tok) || !isValueToken(prev) {
			continue
		}
		switch strings.ToUpper(tok.Text) {
		case "AS", "AND", "OR", "NOT", "IN", "IS":
			continue
		}
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Type:     TypeMissingOperator,
			Message:  fmt.Sprintf("Missing operator between %q and %q", prev.Text, tok.Text),
			Position: i,
			Token:    tok.Text,
			Summary:  fmt.Sprintf("Statement %d: Missing operator between %q and %q", stmt.Index, prev.Text, tok.Text),
		})
	}

	return findings
}

func isValueToken(tok types.Token) bool {
	return tok.Kind == types.TokenIdentifier || tok.Kind.IsLiteral()
}
