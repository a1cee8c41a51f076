package formatter

import (
	"math"
	"strings"

	"github.com/sqlkit/sqlformat/pkg/types"
)

// Minify strips comments and collapses all whitespace, producing a
// single-line rendition of sql. On an internal fault the original text is
// returned unchanged.
func (f *Formatter) Minify(sql string) (result *types.MinifyResult) {
	defer func() {
		if recover() != nil {
			result = minifyResult(sql, sql)
		}
	}()

	tokens := meaningful(f.tokenizer.Tokenize(sql), true)
	var b strings.Builder
	last := ""
	for _, tok := range tokens {
		if b.Len() > 0 && needsSpace(last, tok.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
		last = tok.Text
	}

	return minifyResult(sql, b.String())
}

func minifyResult(original, minified string) *types.MinifyResult {
	ratio := 0.0
	if len(original) > 0 {
		ratio = math.Round((1-float64(len(minified))/float64(len(original)))*1000) / 10
	}
	return &types.MinifyResult{
		MinifiedSQL:      minified,
		OriginalLength:   len(original),
		MinifiedLength:   len(minified),
		CompressionRatio: ratio,
	}
}
