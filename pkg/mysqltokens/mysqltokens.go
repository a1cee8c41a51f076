// Package mysqltokens adapts the ANTLR MySQL lexer to the tokenizer
// contract, so validation of MySQL-dialect input can use the real MySQL
// token stream instead of the dialect-neutral lexer.
package mysqltokens

import (
	"strings"

	"github.com/antlr4-go/antlr/v4"
	parser "github.com/gedhean/mysql-parser"

	"github.com/sqlkit/sqlformat/pkg/tokenizer"
	"github.com/sqlkit/sqlformat/pkg/types"
)

// Tokenizer lexes SQL with the generated MySQL lexer and maps the ANTLR
// token stream onto types.Token.
type Tokenizer struct {
	fallback *tokenizer.Lexer
}

var _ tokenizer.Tokenizer = (*Tokenizer)(nil)

// New creates a MySQL tokenizer. It falls back to the built-in lexer when
// the ANTLR lexer cannot process the input at all.
func New() *Tokenizer {
	return &Tokenizer{fallback: tokenizer.NewLexer()}
}

// Tokenize implements tokenizer.Tokenizer. It never fails on malformed SQL;
// the ANTLR lexer's error listeners are removed and anything it cannot lex
// is handled by the fallback.
func (t *Tokenizer) Tokenize(sql string) (tokens []types.Token) {
	defer func() {
		if recover() != nil {
			tokens = t.fallback.Tokenize(sql)
		}
	}()

	input := antlr.NewInputStream(sql)
	lexer := parser.NewMySQLLexer(input)
	lexer.RemoveErrorListeners()

	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	stream.Fill()

	for _, tok := range stream.GetAllTokens() {
		if tok.GetTokenType() == antlr.TokenEOF {
			continue
		}
		tokens = append(tokens, types.Token{
			Text:     tok.GetText(),
			Kind:     classify(tok),
			Position: tok.GetStart(),
		})
	}
	return tokens
}

// classify maps an ANTLR token to a TokenKind. Hidden-channel tokens are
// whitespace or comments; default-channel tokens are classified by shape,
// which keeps the adapter independent of the generated token-type table.
func classify(tok antlr.Token) types.TokenKind {
	text := tok.GetText()
	if tok.GetChannel() != antlr.TokenDefaultChannel {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return types.TokenWhitespace
		}
		return types.TokenComment
	}

	if text == "" {
		return types.TokenOther
	}

	switch c := text[0]; {
	case c == '\'' || c == '"':
		return types.TokenString
	case c == '`':
		return types.TokenIdentifier
	case c >= '0' && c <= '9':
		return types.TokenNumber
	case isWordByte(c):
		if tokenizer.IsKeywordText(text) {
			return tokenizer.KeywordKind(text)
		}
		return types.TokenIdentifier
	default:
		return types.TokenPunctuation
	}
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
