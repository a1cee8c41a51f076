package validator

import (
	"fmt"
	"sync"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// Rule is one independent diagnostic check applied per statement.
//
// Check must be pure: same statement in, same findings out, no shared
// mutable state. It must tolerate malformed statements, including statements
// with zero meaningful tokens, and return nothing rather than fail.
type Rule interface {
	// Type returns the finding type tag this rule emits.
	Type() string

	// Check inspects a single statement and returns zero or more findings.
	Check(stmt *types.Statement) []types.Finding
}

var (
	ruleMu sync.RWMutex
	rules  = make(map[string]Rule)
)

// register makes a rule available by its type tag. It panics on a duplicate
// registration or a nil rule; both are programming errors caught at init.
func register(rule Rule) {
	ruleMu.Lock()
	defer ruleMu.Unlock()
	if rule == nil {
		panic("validator: register called with nil rule")
	}
	if _, dup := rules[rule.Type()]; dup {
		panic(fmt.Sprintf("validator: register called twice for rule %q", rule.Type()))
	}
	rules[rule.Type()] = rule
}

// lookup retrieves a registered rule by type tag.
func lookup(ruleType string) (Rule, bool) {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	rule, ok := rules[ruleType]
	return rule, ok
}

// ruleOrder fixes the order rules run in for every statement. Findings are
// emitted in this order, so reports are stable across runs.
var ruleOrder = []string{
	TypeKeywordTypo,
	TypeInvalidCommand,
	TypeMissingFromWithWhere,
	TypeMissingFromColumns,
	TypeMissingInto,
	TypeMissingValues,
	TypeMissingSet,
	TypeUnexpectedKeyword,
	TypeMissingOperator,
	TypeUnmatchedParentheses,
	TypeUnmatchedQuote,
	TypeMissingSemicolon,
}

// Finding type tags. The empty-input and exception tags are emitted by the
// engine itself rather than by a registered rule.
const (
	TypeEmptyInput           = "empty_input"
	TypeKeywordTypo          = "keyword_typo"
	TypeInvalidCommand       = "invalid_command"
	TypeMissingFromWithWhere = "missing_from_with_where"
	TypeMissingFromColumns   = "missing_from_columns"
	TypeMissingInto          = "missing_into"
	TypeMissingValues        = "missing_values"
	TypeMissingSet           = "missing_set"
	TypeUnexpectedKeyword    = "unexpected_keyword"
	TypeMissingOperator      = "missing_operator"
	TypeUnmatchedParentheses = "unmatched_parentheses"
	TypeUnmatchedParen       = "unmatched_paren"
	TypeUnmatchedQuote       = "unmatched_quote"
	TypeMissingSemicolon     = "missing_semicolon"
	TypeException            = "exception"
)
