package tokenizer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlkit/sqlformat/pkg/types"
)

func kinds(tokens []types.Token) []types.TokenKind {
	out := make([]types.TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func texts(tokens []types.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestLexerTokenize(t *testing.T) {
	lexer := NewLexer()

	tests := []struct {
		name      string
		sql       string
		wantTexts []string
		wantKinds []types.TokenKind
	}{
		{
			name:      "simple select",
			sql:       "SELECT name FROM users;",
			wantTexts: []string{"SELECT", " ", "name", " ", "FROM", " ", "users", ";"},
			wantKinds: []types.TokenKind{
				types.TokenKeywordDML, types.TokenWhitespace,
				types.TokenIdentifier, types.TokenWhitespace,
				types.TokenKeyword, types.TokenWhitespace,
				types.TokenIdentifier, types.TokenPunctuation,
			},
		},
		{
			name:      "keywords are case insensitive",
			sql:       "select From",
			wantTexts: []string{"select", " ", "From"},
			wantKinds: []types.TokenKind{
				types.TokenKeywordDML, types.TokenWhitespace, types.TokenKeyword,
			},
		},
		{
			name:      "string literal",
			sql:       "'it''s'",
			wantTexts: []string{"'it''s'"},
			wantKinds: []types.TokenKind{types.TokenString},
		},
		{
			name:      "backtick quoted name is an identifier",
			sql:       "`from`",
			wantTexts: []string{"`from`"},
			wantKinds: []types.TokenKind{types.TokenIdentifier},
		},
		{
			name:      "numeric literal with exponent",
			sql:       "1.5e3",
			wantTexts: []string{"1.5e3"},
			wantKinds: []types.TokenKind{types.TokenNumber},
		},
		{
			name:      "line comment",
			sql:       "SELECT 1 -- trailing",
			wantTexts: []string{"SELECT", " ", "1", " ", "-- trailing"},
			wantKinds: []types.TokenKind{
				types.TokenKeywordDML, types.TokenWhitespace,
				types.TokenNumber, types.TokenWhitespace, types.TokenComment,
			},
		},
		{
			name:      "hash comment",
			sql:       "# note\n1",
			wantTexts: []string{"# note", "\n", "1"},
			wantKinds: []types.TokenKind{
				types.TokenComment, types.TokenWhitespace, types.TokenNumber,
			},
		},
		{
			name:      "block comment",
			sql:       "/* a */1",
			wantTexts: []string{"/* a */", "1"},
			wantKinds: []types.TokenKind{types.TokenComment, types.TokenNumber},
		},
		{
			name:      "unterminated block comment runs to end",
			sql:       "/* open",
			wantTexts: []string{"/* open"},
			wantKinds: []types.TokenKind{types.TokenComment},
		},
		{
			name:      "two byte operators stay single tokens",
			sql:       "a<=b!=c",
			wantTexts: []string{"a", "<=", "b", "!=", "c"},
			wantKinds: []types.TokenKind{
				types.TokenIdentifier, types.TokenPunctuation,
				types.TokenIdentifier, types.TokenPunctuation,
				types.TokenIdentifier,
			},
		},
		{
			name:      "unterminated string runs to end",
			sql:       "'open",
			wantTexts: []string{"'open"},
			wantKinds: []types.TokenKind{types.TokenString},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexer.Tokenize(tt.sql)
			require.Equal(t, tt.wantTexts, texts(got))
			require.Equal(t, tt.wantKinds, kinds(got))
		})
	}
}

func TestLexerPositions(t *testing.T) {
	got := NewLexer().Tokenize("SELECT x")
	require.Len(t, got, 3)
	require.Equal(t, 0, got[0].Position)
	require.Equal(t, 6, got[1].Position)
	require.Equal(t, 7, got[2].Position)
}

func TestLexerNeverDropsInput(t *testing.T) {
	// Reassembling the token texts must reproduce the input byte for byte.
	inputs := []string{
		"SELECT * FROM t WHERE a = 'x;y' AND b != 2 -- done",
		"\x00\x01 weird \xff input",
		"((( 'unclosed",
	}
	lexer := NewLexer()
	for _, sql := range inputs {
		var rebuilt string
		for _, tok := range lexer.Tokenize(sql) {
			rebuilt += tok.Text
		}
		require.Equal(t, sql, rebuilt)
	}
}

func TestKeywordKind(t *testing.T) {
	require.Equal(t, types.TokenKeywordDML, KeywordKind("select"))
	require.Equal(t, types.TokenKeywordDDL, KeywordKind("CREATE"))
	require.Equal(t, types.TokenKeyword, KeywordKind("where"))
	require.Equal(t, types.TokenIdentifier, KeywordKind("users"))
}

func TestKeywordsSorted(t *testing.T) {
	words := Keywords()
	require.True(t, sort.StringsAreSorted(words))
	require.Contains(t, words, "SELECT")
	require.Contains(t, words, "WHERE")
}
