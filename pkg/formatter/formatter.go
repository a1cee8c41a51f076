// Package formatter implements SQL text formatting and minification on top
// of the tokenizer. Formatting is whitespace- and case-driven; it never
// reorders or rewrites tokens, so malformed SQL passes through shaped but
// otherwise untouched.
package formatter

import (
	"strings"

	"github.com/sqlkit/sqlformat/pkg/splitter"
	"github.com/sqlkit/sqlformat/pkg/tokenizer"
	"github.com/sqlkit/sqlformat/pkg/types"
)

// Options controls one formatting call. The zero value is not useful; start
// from DefaultOptions or a config preset.
type Options struct {
	// KeywordCase is "upper", "lower", or "capitalize". Empty leaves
	// keywords untouched.
	KeywordCase string `json:"keyword_case" yaml:"keyword_case"`

	// IdentifierCase is "upper", "lower", or "capitalize". Empty leaves
	// identifiers untouched.
	IdentifierCase string `json:"identifier_case" yaml:"identifier_case"`

	StripComments   bool `json:"strip_comments" yaml:"strip_comments"`
	IndentTabs      bool `json:"indent_tabs" yaml:"indent_tabs"`
	IndentWidth     int  `json:"indent_width" yaml:"indent_width"`
	WrapAfter       int  `json:"wrap_after" yaml:"wrap_after"`
	CommaFirst      bool `json:"comma_first" yaml:"comma_first"`
	Reindent        bool `json:"reindent" yaml:"reindent"`
	StripWhitespace bool `json:"strip_whitespace" yaml:"strip_whitespace"`
}

// DefaultOptions mirrors the service's stock formatting behavior.
func DefaultOptions() Options {
	return Options{
		KeywordCase:     "upper",
		IdentifierCase:  "",
		StripComments:   false,
		IndentTabs:      false,
		IndentWidth:     4,
		WrapAfter:       79,
		CommaFirst:      false,
		Reindent:        true,
		StripWhitespace: true,
	}
}

// Formatter formats and minifies SQL text.
type Formatter struct {
	tokenizer tokenizer.Tokenizer
}

// New creates a Formatter using the built-in lexer.
func New() *Formatter {
	return &Formatter{tokenizer: tokenizer.NewLexer()}
}

// Format formats sql according to opts. It never fails for malformed SQL;
// on an internal fault the original text is returned with Success=false.
func (f *Formatter) Format(sql string, opts Options) (result *types.FormatResult) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			result = &types.FormatResult{
				FormattedSQL:    sql,
				Success:         false,
				Error:           "formatting failed",
				OriginalLength:  len(sql),
				FormattedLength: len(sql),
			}
		}
	}()

	if strings.TrimSpace(sql) == "" {
		return &types.FormatResult{
			FormattedSQL: "",
			Success:      false,
			Error:        "Empty SQL provided",
		}
	}

	var statements []string
	for _, frag := range splitter.Split(sql) {
		statements = append(statements, f.formatStatement(frag.Text, opts))
	}

	formatted := strings.Join(statements, "\n\n")
	return &types.FormatResult{
		FormattedSQL:    formatted,
		Success:         true,
		OriginalLength:  len(sql),
		FormattedLength: len(formatted),
	}
}

// clauseStarters begin a new line at indent zero when reindenting.
var clauseStarters = map[string]bool{
	"SELECT": true,
	"FROM":   true,
	"WHERE":  true,
	"GROUP":  true,
	"ORDER":  true,
	"HAVING": true,
	"LIMIT":  true,
	"OFFSET": true,
	"UNION":  true,
	"VALUES": true,
	"SET":    true,
	"INSERT": true,
	"UPDATE": true,
	"DELETE": true,
}

// joinStarters begin a new line but keep trailing join qualifiers (LEFT
// OUTER JOIN) on the same line.
var joinStarters = map[string]bool{
	"JOIN":  true,
	"LEFT":  true,
	"RIGHT": true,
	"INNER": true,
	"FULL":  true,
	"CROSS": true,
}

func (f *Formatter) formatStatement(text string, opts Options) string {
	tokens := meaningful(f.tokenizer.Tokenize(text), opts.StripComments)
	if len(tokens) == 0 {
		return strings.TrimSpace(text)
	}

	w := &lineWriter{
		indent:    indentUnit(opts),
		wrapAfter: opts.WrapAfter,
	}

	for i, tok := range tokens {
		word := applyCase(tok, opts)
		upper := strings.ToUpper(tok.Text)

		switch {
		case !opts.Reindent:
			w.write(word, tok)
		case i == 0:
			w.write(word, tok)
		case clauseStarters[upper] && w.parenDepth == 0:
			w.newline(0)
			w.write(word, tok)
		case joinStarters[upper] && w.parenDepth == 0 && !joinStarters[strings.ToUpper(tokens[i-1].Text)]:
			w.newline(0)
			w.write(word, tok)
		case (upper == "AND" || upper == "OR") && w.parenDepth == 0:
			w.newline(1)
			w.write(word, tok)
		case word == "," && opts.CommaFirst && w.parenDepth == 0:
			w.newline(1)
			w.write(word, tok)
		default:
			w.write(word, tok)
			if word == "," && !opts.CommaFirst && opts.Reindent && w.parenDepth == 0 {
				w.newline(1)
			}
		}
	}

	return w.String()
}

func meaningful(tokens []types.Token, stripComments bool) []types.Token {
	out := make([]types.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == types.TokenWhitespace {
			continue
		}
		if stripComments && tok.Kind == types.TokenComment {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func applyCase(tok types.Token, opts Options) string {
	switch {
	case tok.Kind.IsKeyword():
		return recase(tok.Text, opts.KeywordCase)
	case tok.Kind == types.TokenIdentifier && !strings.HasPrefix(tok.Text, "`"):
		return recase(tok.Text, opts.IdentifierCase)
	default:
		return tok.Text
	}
}

func recase(word, mode string) string {
	switch mode {
	case "upper":
		return strings.ToUpper(word)
	case "lower":
		return strings.ToLower(word)
	case "capitalize":
		if word == "" {
			return word
		}
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	default:
		return word
	}
}

func indentUnit(opts Options) string {
	if opts.IndentTabs {
		return "\t"
	}
	width := opts.IndentWidth
	if width <= 0 {
		width = 4
	}
	return strings.Repeat(" ", width)
}

// lineWriter accumulates output lines with token-aware spacing and tracks
// parenthesis depth so clause breaking only happens at the top level.
type lineWriter struct {
	lines      []string
	current    strings.Builder
	indent     string
	wrapAfter  int
	parenDepth int
	lastText   string
}

func (w *lineWriter) write(word string, tok types.Token) {
	if w.current.Len() > 0 && needsSpace(w.lastText, word) {
		w.current.WriteByte(' ')
	}
	if w.wrapAfter > 0 && w.current.Len() > 0 && w.current.Len()+len(word) > w.wrapAfter {
		w.newline(1)
	}
	w.current.WriteString(word)
	w.lastText = word

	switch tok.Text {
	case "(":
		w.parenDepth++
	case ")":
		if w.parenDepth > 0 {
			w.parenDepth--
		}
	}
}

func (w *lineWriter) newline(indentLevel int) {
	if w.current.Len() > 0 {
		w.lines = append(w.lines, strings.TrimRight(w.current.String(), " \t"))
		w.current.Reset()
	}
	w.current.WriteString(strings.Repeat(w.indent, indentLevel))
	w.lastText = ""
}

func (w *lineWriter) String() string {
	if strings.TrimSpace(w.current.String()) != "" {
		w.lines = append(w.lines, strings.TrimRight(w.current.String(), " \t"))
	}
	return strings.Join(w.lines, "\n")
}

// needsSpace decides token-join spacing: none before closers and separators,
// none after an opening paren or a dot.
func needsSpace(prev, next string) bool {
	if prev == "" {
		return false
	}
	switch next {
	case ",", ";", ")", ".":
		return false
	}
	switch prev {
	case "(", ".":
		return false
	}
	return true
}
