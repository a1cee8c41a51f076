package tokenizer

import (
	"strings"
	"unicode"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// Lexer is the built-in, dialect-neutral SQL tokenizer.
//
// It is a single-pass scanner recognizing identifiers, keywords, numeric and
// string literals, quoted identifiers, -- and /* */ comments, and
// punctuation. It never fails: bytes it cannot classify become TokenOther
// tokens so validation can still run over malformed input.
type Lexer struct{}

var _ Tokenizer = (*Lexer)(nil)

// NewLexer returns the built-in lexer.
func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize splits sql into classified tokens. Offsets are byte positions
// into the input string.
func (*Lexer) Tokenize(sql string) []types.Token {
	var tokens []types.Token
	pos := 0
	n := len(sql)

	for pos < n {
		start := pos
		c := sql[pos]

		switch {
		case isSpace(c):
			for pos < n && isSpace(sql[pos]) {
				pos++
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenWhitespace, Position: start})

		case c == '-' && pos+1 < n && sql[pos+1] == '-':
			for pos < n && sql[pos] != '\n' {
				pos++
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenComment, Position: start})

		case c == '#':
			for pos < n && sql[pos] != '\n' {
				pos++
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenComment, Position: start})

		case c == '/' && pos+1 < n && sql[pos+1] == '*':
			pos += 2
			for pos+1 < n && !(sql[pos] == '*' && sql[pos+1] == '/') {
				pos++
			}
			if pos+1 < n {
				pos += 2 // closing */
			} else {
				pos = n // unterminated comment runs to EOF
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenComment, Position: start})

		case c == '\'' || c == '"' || c == '`':
			pos = scanQuoted(sql, pos, c)
			kind := types.TokenString
			if c == '`' {
				// Backtick-quoted names are identifiers in every dialect
				// that uses them.
				kind = types.TokenIdentifier
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: kind, Position: start})

		case isDigit(c):
			for pos < n && (isDigit(sql[pos]) || sql[pos] == '.' || sql[pos] == 'e' || sql[pos] == 'E') {
				pos++
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenNumber, Position: start})

		case isWordStart(c):
			for pos < n && isWordPart(sql[pos]) {
				pos++
			}
			word := sql[start:pos]
			kind := types.TokenIdentifier
			if IsKeywordText(word) {
				kind = KeywordKind(word)
			}
			tokens = append(tokens, types.Token{Text: word, Kind: kind, Position: start})

		case isPunct(c):
			pos++
			// Greedily take two-byte operators so <= and != stay one token.
			if pos < n && isTwoBytePunct(sql[start:pos+1]) {
				pos++
			}
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenPunctuation, Position: start})

		default:
			pos++
			tokens = append(tokens, types.Token{Text: sql[start:pos], Kind: types.TokenOther, Position: start})
		}
	}

	return tokens
}

// scanQuoted consumes a quoted region starting at pos, honoring doubled
// quote escapes ('' inside a '-string). An unterminated quote runs to EOF.
func scanQuoted(sql string, pos int, quote byte) int {
	n := len(sql)
	pos++ // opening quote
	for pos < n {
		if sql[pos] == quote {
			if pos+1 < n && sql[pos+1] == quote {
				pos += 2
				continue
			}
			return pos + 1
		}
		pos++
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isWordPart(c byte) bool {
	return c == '_' || c == '$' || isDigit(c) || unicode.IsLetter(rune(c))
}

func isPunct(c byte) bool {
	return strings.IndexByte("(),;.*=<>!+-/%|&^~[]{}:?@", c) >= 0
}

func isTwoBytePunct(s string) bool {
	switch s {
	case "<=", ">=", "<>", "!=", "||", "&&", "::", ":=", "->":
		return true
	default:
		return false
	}
}
