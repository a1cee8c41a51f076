package validator

import (
	"fmt"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*MissingSemicolonRule)(nil)

func init() {
	register(&MissingSemicolonRule{})
}

// MissingSemicolonRule warns when a statement's last significant token is
// not a semicolon.
type MissingSemicolonRule struct{}

// Type implements Rule.
func (*MissingSemicolonRule) Type() string { return TypeMissingSemicolon }

// Check implements Rule.
func (*MissingSemicolonRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if len(tokens) == 0 {
		return nil
	}
	if stmt.Terminated || tokens[len(tokens)-1].Text == ";" {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityWarning,
		Type:     TypeMissingSemicolon,
		Message:  "Missing semicolon at end of statement",
		Position: len(tokens) - 1,
		Token:    tokens[len(tokens)-1].Text,
		Summary:  fmt.Sprintf("Statement %d: Missing semicolon at end of statement", stmt.Index),
	}}
}
