// Package tokenizer turns raw SQL text into classified tokens.
//
// The package defines the Tokenizer contract consumed by the validation
// engine and provides a built-in, dialect-neutral lexer. Dialect-specific
// tokenizers (see pkg/mysqltokens) satisfy the same contract.
package tokenizer

import (
	"sort"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// Tokenizer produces the token sequence for a single SQL statement.
//
// Implementations must be safe for concurrent use and must not fail on
// malformed SQL; unrecognizable input is classified as TokenOther.
type Tokenizer interface {
	Tokenize(sql string) []types.Token
}

// keywords maps upper-cased keyword text to its token kind. The set covers
// the clause and connector vocabulary the validation rules care about, not
// any one dialect's full reserved-word list.
var keywords = map[string]types.TokenKind{
	"SELECT":   types.TokenKeywordDML,
	"INSERT":   types.TokenKeywordDML,
	"UPDATE":   types.TokenKeywordDML,
	"DELETE":   types.TokenKeywordDML,
	"MERGE":    types.TokenKeywordDML,
	"CREATE":   types.TokenKeywordDDL,
	"DROP":     types.TokenKeywordDDL,
	"ALTER":    types.TokenKeywordDDL,
	"TRUNCATE": types.TokenKeywordDDL,

	"FROM":      types.TokenKeyword,
	"WHERE":     types.TokenKeyword,
	"GROUP":     types.TokenKeyword,
	"ORDER":     types.TokenKeyword,
	"BY":        types.TokenKeyword,
	"HAVING":    types.TokenKeyword,
	"LIMIT":     types.TokenKeyword,
	"OFFSET":    types.TokenKeyword,
	"UNION":     types.TokenKeyword,
	"ALL":       types.TokenKeyword,
	"DISTINCT":  types.TokenKeyword,
	"INTO":      types.TokenKeyword,
	"VALUES":    types.TokenKeyword,
	"SET":       types.TokenKeyword,
	"AS":        types.TokenKeyword,
	"ON":        types.TokenKeyword,
	"AND":       types.TokenKeyword,
	"OR":        types.TokenKeyword,
	"NOT":       types.TokenKeyword,
	"IN":        types.TokenKeyword,
	"IS":        types.TokenKeyword,
	"NULL":      types.TokenKeyword,
	"LIKE":      types.TokenKeyword,
	"BETWEEN":   types.TokenKeyword,
	"EXISTS":    types.TokenKeyword,
	"JOIN":      types.TokenKeyword,
	"INNER":     types.TokenKeyword,
	"OUTER":     types.TokenKeyword,
	"LEFT":      types.TokenKeyword,
	"RIGHT":     types.TokenKeyword,
	"FULL":      types.TokenKeyword,
	"CROSS":     types.TokenKeyword,
	"WITH":      types.TokenKeyword,
	"EXPLAIN":   types.TokenKeyword,
	"ANALYZE":   types.TokenKeyword,
	"SHOW":      types.TokenKeyword,
	"DESCRIBE":  types.TokenKeyword,
	"USE":       types.TokenKeyword,
	"TABLE":     types.TokenKeyword,
	"INDEX":     types.TokenKeyword,
	"VIEW":      types.TokenKeyword,
	"DATABASE":  types.TokenKeyword,
	"CASE":      types.TokenKeyword,
	"WHEN":      types.TokenKeyword,
	"THEN":      types.TokenKeyword,
	"ELSE":      types.TokenKeyword,
	"END":       types.TokenKeyword,
	"ASC":       types.TokenKeyword,
	"DESC":      types.TokenKeyword,
	"PRIMARY":   types.TokenKeyword,
	"KEY":       types.TokenKeyword,
	"FOREIGN":   types.TokenKeyword,
	"REFERENCE": types.TokenKeyword,
	"DEFAULT":   types.TokenKeyword,
	"TRUE":      types.TokenKeyword,
	"FALSE":     types.TokenKeyword,
}

// KeywordKind returns the keyword kind for the given word, or TokenIdentifier
// when the word is not a recognized keyword. Matching is case-insensitive.
func KeywordKind(word string) types.TokenKind {
	if kind, ok := keywords[strings.ToUpper(word)]; ok {
		return kind
	}
	return types.TokenIdentifier
}

// IsKeywordText reports whether the given word is a recognized keyword.
func IsKeywordText(word string) bool {
	_, ok := keywords[strings.ToUpper(word)]
	return ok
}

// Keywords returns the recognized keyword vocabulary in sorted order, for
// syntax-highlighting clients.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for word := range keywords {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}
