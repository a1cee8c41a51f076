package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// statementStarters is the set of keywords recognized as legal statement
// openers.
var statementStarters = map[string]bool{
	"SELECT":   true,
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"CREATE":   true,
	"DROP":     true,
	"ALTER":    true,
	"WITH":     true,
	"EXPLAIN":  true,
	"ANALYZE":  true,
	"SHOW":     true,
	"DESCRIBE": true,
	"USE":      true,
}

var _ Rule = (*InvalidCommandRule)(nil)

func init() {
	register(&InvalidCommandRule{})
}

// InvalidCommandRule flags statements whose leading token is neither a
// recognized statement-starting keyword nor a known keyword typo. Typos are
// left to KeywordTypoRule so the same token is not reported twice.
type InvalidCommandRule struct{}

// Type implements Rule.
func (*InvalidCommandRule) Type() string { return TypeInvalidCommand }

// Check implements Rule.
func (*InvalidCommandRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if len(tokens) == 0 {
		return nil
	}

	first := tokens[0]
	upper := strings.ToUpper(first.Text)

	if first.Kind.IsKeyword() || statementStarters[upper] || isTypoCorrection(upper) {
		return nil
	}
	if _, isTypo := typoCorrection(upper); isTypo {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeInvalidCommand,
		Message:  fmt.Sprintf("Statement starts with invalid keyword: %q", first.Text),
		Position: 0,
		Token:    first.Text,
		Summary:  fmt.Sprintf("Statement %d: Invalid or missing SQL command: %q", stmt.Index, first.Text),
	}}
}
