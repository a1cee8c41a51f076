package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*KeywordTypoRule)(nil)

func init() {
	register(&KeywordTypoRule{})
}

// KeywordTypoRule flags tokens whose upper-cased text matches a known
// misspelling of a SQL keyword. The leading token gets a more pointed
// message than typos elsewhere in the statement; the leading token is never
// reported twice.
type KeywordTypoRule struct{}

// Type implements Rule.
func (*KeywordTypoRule) Type() string { return TypeKeywordTypo }

// Check implements Rule.
func (*KeywordTypoRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if len(tokens) == 0 {
		return nil
	}

	var findings []types.Finding

	first := tokens[0]
	if canonical, ok := typoCorrection(strings.ToUpper(first.Text)); ok {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeKeywordTypo,
			Message:  fmt.Sprintf("Possible typo: %q should be %q", first.Text, canonical),
			Position: 0,
			Token:    first.Text,
			Summary: fmt.Sprintf("Statement %d: Possible typo in SQL keyword: %q (did you mean %q?)",
				stmt.Index, first.Text, canonical),
		})
	}

	// Typos elsewhere in the statement, excluding the already-reported
	// leading token.
	for i, tok := range tokens {
		if i == 0 {
			continue
		}
		canonical, ok := typoCorrection(strings.ToUpper(tok.Text))
		if !ok {
			continue
		}
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Type:     TypeKeywordTypo,
			Message:  fmt.Sprintf("Possible typo: %q should be %q", tok.Text, canonical),
			Position: i,
			Token:    tok.Text,
			Summary: fmt.Sprintf("Statement %d: Possible typo in keyword: %q (did you mean %q?)",
				stmt.Index, tok.Text, canonical),
		})
	}

	return findings
}
