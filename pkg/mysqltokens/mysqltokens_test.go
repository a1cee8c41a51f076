package mysqltokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlkit/sqlformat/pkg/types"
)

func meaningfulKinds(tokens []types.Token) []types.TokenKind {
	var out []types.TokenKind
	for _, tok := range tokens {
		if tok.Kind == types.TokenWhitespace || tok.Kind == types.TokenComment {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeClassifies(t *testing.T) {
	tokens := New().Tokenize("SELECT name FROM users WHERE id = 1")
	require.NotEmpty(t, tokens)

	kinds := meaningfulKinds(tokens)
	require.Equal(t, types.TokenKeywordDML, kinds[0])

	var sawIdentifier, sawNumber bool
	for _, kind := range kinds {
		switch kind {
		case types.TokenIdentifier:
			sawIdentifier = true
		case types.TokenNumber:
			sawNumber = true
		}
	}
	require.True(t, sawIdentifier)
	require.True(t, sawNumber)
}

func TestTokenizeReproducesInput(t *testing.T) {
	sql := "SELECT `name`, 'it''s' FROM users -- done"
	var rebuilt string
	for _, tok := range New().Tokenize(sql) {
		rebuilt += tok.Text
	}
	require.Equal(t, sql, rebuilt)
}

func TestTokenizeNeverFails(t *testing.T) {
	// Malformed input must still come back as tokens, not an error.
	for _, sql := range []string{
		"SELCT ((( 'broken",
		"\x00\x01\x02",
		"",
	} {
		require.NotPanics(t, func() {
			_ = New().Tokenize(sql)
		})
	}
}
