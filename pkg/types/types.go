// Package types holds the data model shared by the tokenizer, the statement
// splitter, the validation engine, and the formatter.
package types

import "fmt"

// TokenKind classifies a lexical unit of SQL text.
type TokenKind int32

const (
	// TokenOther is the fallback kind for anything the lexer cannot classify.
	TokenOther TokenKind = iota
	// TokenKeyword is a plain SQL keyword (FROM, WHERE, INTO, ...).
	TokenKeyword
	// TokenKeywordDML is a DML statement keyword (SELECT, INSERT, UPDATE, DELETE).
	TokenKeywordDML
	// TokenKeywordDDL is a DDL statement keyword (CREATE, DROP, ALTER, TRUNCATE).
	TokenKeywordDDL
	// TokenIdentifier is a table, column, alias, or function name.
	TokenIdentifier
	// TokenString is a quoted string literal.
	TokenString
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenPunctuation covers operators and delimiters.
	TokenPunctuation
	// TokenWhitespace is a run of spaces, tabs, or newlines.
	TokenWhitespace
	// TokenComment is a -- or /* */ comment.
	TokenComment
)

// String returns the kind name in lower snake case.
func (k TokenKind) String() string {
	switch k {
	case TokenKeyword:
		return "keyword"
	case TokenKeywordDML:
		return "keyword_dml"
	case TokenKeywordDDL:
		return "keyword_ddl"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenPunctuation:
		return "punctuation"
	case TokenWhitespace:
		return "whitespace"
	case TokenComment:
		return "comment"
	default:
		return "other"
	}
}

// IsKeyword reports whether the kind is any of the keyword kinds.
func (k TokenKind) IsKeyword() bool {
	return k == TokenKeyword || k == TokenKeywordDML || k == TokenKeywordDDL
}

// IsLiteral reports whether the kind is a string or numeric literal.
func (k TokenKind) IsLiteral() bool {
	return k == TokenString || k == TokenNumber
}

// Token is one classified lexical unit. Tokens are immutable once produced
// and belong to the statement they were lexed from.
type Token struct {
	Text     string
	Kind     TokenKind
	Position int
}

// Statement is one SQL command within a possibly multi-statement input.
// It is created by the splitter and consumed read-only by every rule.
type Statement struct {
	// Text is the original substring, including the terminating semicolon
	// when one was present.
	Text string

	// Index is the 1-based position of the statement within the input.
	Index int

	// Tokens is the full token sequence, whitespace and comments included.
	Tokens []Token

	// Terminated records whether the statement ended with a top-level
	// semicolon in the source text.
	Terminated bool
}

// MeaningfulTokens returns the statement's tokens with whitespace and
// comments filtered out.
func (s *Statement) MeaningfulTokens() []Token {
	out := make([]Token, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		if tok.Kind == TokenWhitespace || tok.Kind == TokenComment {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Severity is the level of a validation finding.
type Severity int32

const (
	// SeverityError marks findings that make the statement invalid.
	SeverityError Severity = iota
	// SeverityWarning marks advisory findings that never affect validity.
	SeverityWarning
)

// String returns "ERROR" or "WARNING".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "WARNING"
	}
	return "ERROR"
}

// Finding is one diagnostic emitted by a single rule invocation.
//
// Position is a best-effort character or token offset and must be treated as
// advisory, not a precise cursor.
type Finding struct {
	Severity Severity `json:"-" yaml:"-"`
	Type     string   `json:"type" yaml:"type"`
	Message  string   `json:"message" yaml:"message"`
	Position int      `json:"position" yaml:"position"`
	Token    string   `json:"token" yaml:"token"`

	// Summary is the full report line for the errors/warnings lists,
	// including the statement-index prefix. It is not part of the
	// serialized detail record.
	Summary string `json:"-" yaml:"-"`
}

// ValidationReport is the aggregated result of validating one input.
//
// IsValid holds iff Errors is empty; warnings never affect validity.
// ErrorDetails carries the structured records for error-severity findings
// only; warnings are summarized as plain strings.
type ValidationReport struct {
	IsValid      bool      `json:"is_valid" yaml:"is_valid"`
	Errors       []string  `json:"errors" yaml:"errors"`
	Warnings     []string  `json:"warnings" yaml:"warnings"`
	ErrorDetails []Finding `json:"error_details" yaml:"error_details"`
}

// String returns a one-line summary of the report.
func (r *ValidationReport) String() string {
	return fmt.Sprintf("valid=%t errors=%d warnings=%d", r.IsValid, len(r.Errors), len(r.Warnings))
}

// FormatResult is the outcome of one formatting call.
type FormatResult struct {
	FormattedSQL    string `json:"formatted_sql" yaml:"formatted_sql"`
	Success         bool   `json:"success" yaml:"success"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty"`
	OriginalLength  int    `json:"original_length" yaml:"original_length"`
	FormattedLength int    `json:"formatted_length" yaml:"formatted_length"`
}

// MinifyResult is the outcome of one minification call.
type MinifyResult struct {
	MinifiedSQL      string  `json:"minified_sql" yaml:"minified_sql"`
	OriginalLength   int     `json:"original_length" yaml:"original_length"`
	MinifiedLength   int     `json:"minified_length" yaml:"minified_length"`
	CompressionRatio float64 `json:"compression_ratio" yaml:"compression_ratio"`
}
