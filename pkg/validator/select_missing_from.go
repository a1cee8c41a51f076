package validator

import (
	"fmt"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

var _ Rule = (*MissingFromWithWhereRule)(nil)
var _ Rule = (*MissingFromColumnsRule)(nil)

func init() {
	register(&MissingFromWithWhereRule{})
	register(&MissingFromColumnsRule{})
}

// MissingFromWithWhereRule flags SELECT statements that have a WHERE clause
// but no FROM clause, which is invalid in every dialect the service handles.
type MissingFromWithWhereRule struct{}

// Type implements Rule.
func (*MissingFromWithWhereRule) Type() string { return TypeMissingFromWithWhere }

// Check implements Rule.
func (*MissingFromWithWhereRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if !startsWith(tokens, "SELECT") {
		return nil
	}
	if hasTokenText(tokens, "FROM") || !hasTokenText(tokens, "WHERE") {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeMissingFromWithWhere,
		Message:  "SELECT statement has WHERE clause but missing FROM clause - this is invalid SQL",
		Position: indexOfTokenText(tokens, "WHERE"),
		Token:    "FROM",
		Summary:  fmt.Sprintf("Statement %d: SELECT with WHERE clause must have FROM clause", stmt.Index),
	}}
}

// selectListTerminators end the select-list when scanning for column-like
// identifiers.
var selectListTerminators = map[string]bool{
	"WHERE":  true,
	"GROUP":  true,
	"ORDER":  true,
	"HAVING": true,
	"LIMIT":  true,
	"UNION":  true,
}

// zeroArgWhitelist holds functions and literals that may legally stand alone
// in a select-list without a FROM clause. The list is a deliberately small
// heuristic; dialect-specific zero-argument constructs will misfire.
var zeroArgWhitelist = map[string]bool{
	"NOW":               true,
	"COUNT":             true,
	"SUM":               true,
	"AVG":               true,
	"MAX":               true,
	"MIN":               true,
	"CURRENT_DATE":      true,
	"CURRENT_TIME":      true,
	"CURRENT_TIMESTAMP": true,
	"NULL":              true,
	"TRUE":              true,
	"FALSE":             true,
	"CONCAT":            true,
	"LENGTH":            true,
	"UPPER":             true,
	"LOWER":             true,
	"TRIM":              true,
	"SUBSTRING":         true,
}

// MissingFromColumnsRule flags SELECT statements that appear to reference
// column names without a FROM clause. It stays quiet when
// MissingFromWithWhereRule applies to the same statement, and when the
// select-list looks like a plain expression over literals.
type MissingFromColumnsRule struct{}

// Type implements Rule.
func (*MissingFromColumnsRule) Type() string { return TypeMissingFromColumns }

// Check implements Rule.
func (*MissingFromColumnsRule) Check(stmt *types.Statement) []types.Finding {
	tokens := stmt.MeaningfulTokens()
	if !startsWith(tokens, "SELECT") || len(tokens) <= 2 {
		return nil
	}
	if hasTokenText(tokens, "FROM") {
		return nil
	}
	// The WHERE-without-FROM rule already covers this statement.
	if hasTokenText(tokens, "WHERE") {
		return nil
	}

	selectList := selectListOf(tokens)
	if !hasColumnCandidate(selectList) || looksLikeExpression(selectList) {
		return nil
	}

	return []types.Finding{{
		Severity: types.SeverityError,
		Type:     TypeMissingFromColumns,
		Message:  "SELECT statement appears to select column names but missing FROM clause",
		Position: 1,
		Token:    "FROM",
		Summary:  fmt.Sprintf("Statement %d: SELECT statement appears to select column names but missing FROM clause", stmt.Index),
	}}
}

// selectListOf returns the tokens between SELECT and the first clause
// terminator.
func selectListOf(tokens []types.Token) []types.Token {
	var out []types.Token
	for _, tok := range tokens[1:] {
		if selectListTerminators[strings.ToUpper(tok.Text)] {
			break
		}
		out = append(out, tok)
	}
	return out
}

func hasColumnCandidate(selectList []types.Token) bool {
	for _, tok := range selectList {
		if tok.Kind != types.TokenIdentifier {
			continue
		}
		if zeroArgWhitelist[strings.ToUpper(tok.Text)] {
			continue
		}
		return true
	}
	return false
}

// looksLikeExpression reports whether the select-list reads as a numeric or
// call expression rather than bare column references: a number adjacent to
// an arithmetic operator, or an empty () argument list.
func looksLikeExpression(selectList []types.Token) bool {
	for i, tok := range selectList {
		if tok.Kind == types.TokenNumber && i+1 < len(selectList) && isArithmetic(selectList[i+1].Text) {
			return true
		}
		if isArithmetic(tok.Text) && i+1 < len(selectList) && selectList[i+1].Kind == types.TokenNumber {
			return true
		}
		if tok.Text == "(" && i+1 < len(selectList) && selectList[i+1].Text == ")" {
			return true
		}
	}
	return false
}

func isArithmetic(text string) bool {
	switch text {
	case "+", "-", "*", "/", "%":
		return true
	default:
		return false
	}
}

func startsWith(tokens []types.Token, keyword string) bool {
	return len(tokens) > 0 && strings.EqualFold(tokens[0].Text, keyword)
}

func hasTokenText(tokens []types.Token, text string) bool {
	return indexOfTokenText(tokens, text) >= 0
}

func indexOfTokenText(tokens []types.Token, text string) int {
	for i, tok := range tokens {
		if strings.EqualFold(tok.Text, text) {
			return i
		}
	}
	return -1
}
