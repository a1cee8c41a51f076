package validator

import (
	"fmt"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*MissingSetRule)(nil)

func init() {
	register(&MissingSetRule{})
}

// MissingSetRule flags UPDATE statements without a SET clause.
type MissingSetRule struct{}

// Type implements Rule.
func (*MissingSetRule) Type() string { return TypeMissingSet }

// Check implements Rule.
func (*MissingSetRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if !startsWith(tokens, "UPDATE") || hasTokenText(tokens, "SET") {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeMissingSet,
		Message:  "UPDATE statement missing SET clause",
		Position: len(tokens) - 1,
		Token:    "SET",
		Summary:  fmt.Sprintf("Statement %d: UPDATE statement missing SET clause", stmt.Index),
	}}
}
