package validator

import (
	"fmt"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*MissingIntoRule)(nil)
var _ Rule = (*MissingValuesRule)(nil)

func init() {
	register(&MissingIntoRule{})
	register(&MissingValuesRule{})
}

// MissingIntoRule flags INSERT statements without an INTO clause.
type MissingIntoRule struct{}

// Type implements Rule.
func (*MissingIntoRule) Type() string { return TypeMissingInto }

// Check implements Rule.
func (*MissingIntoRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if !startsWith(tokens, "INSERT") || hasTokenText(tokens, "INTO") {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeMissingInto,
		Message:  "INSERT statement missing INTO clause",
		Position: 1,
		Token:    "INTO",
		Summary:  fmt.Sprintf("Statement %d: INSERT statement missing INTO clause", stmt.Index),
	}}
}

// MissingValuesRule flags INSERT statements that have neither a VALUES
// clause nor a nested SELECT to supply rows.
type MissingValuesRule struct{}

// Type implements Rule.
func (*MissingValuesRule) Type() string { return TypeMissingValues }

// Check implements Rule.
func (*MissingValuesRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if !startsWith(tokens, "INSERT") {
		return nil
	}
	if hasTokenText(tokens, "VALUES") || hasTokenText(tokens, "SELECT") {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeMissingValues,
		Message:  "INSERT statement missing VALUES or SELECT clause",
		Position: len(tokens) - 1,
		Token:    "VALUES",
		Summary:  fmt.Sprintf("Statement %d: INSERT statement missing VALUES or SELECT clause", stmt.Index),
	}}
}
