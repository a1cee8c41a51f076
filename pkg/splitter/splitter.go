// Package splitter partitions a multi-statement SQL input into individual
// statements so validation rules can run per statement.
package splitter

import "strings"

// Fragment is one statement's source text plus whether it was terminated by
// a top-level semicolon.
type Fragment struct {
	Text       string
	Terminated bool
}

// Split partitions sql on statement-terminating semicolons found at the top
// syntactic level. Semicolons inside string literals, quoted identifiers, or
// parenthesized expressions do not split.
//
// A fragment keeps its terminating semicolon. Fragments that are blank or
// contain only semicolons are dropped, so blank input yields nil and
// non-blank input yields at least one fragment.
func Split(sql string) []Fragment {
	if strings.TrimSpace(sql) == "" {
		return nil
	}

	var fragments []Fragment
	var inSingle, inDouble, inBacktick bool
	parenDepth := 0
	start := 0

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case inSingle:
			if c == '\'' {
				// A doubled quote is an escaped quote, not a terminator.
				if i+1 < len(sql) && sql[i+1] == '\'' {
					i++
				} else {
					inSingle = false
				}
			}
		case inDouble:
			if c == '"' {
				inDouble = false
			}
		case inBacktick:
			if c == '`' {
				inBacktick = false
			}
		case c == '\'':
			inSingle = true
		case c == '"':
			inDouble = true
		case c == '`':
			inBacktick = true
		case c == '(':
			parenDepth++
		case c == ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case c == ';' && parenDepth == 0:
			appendFragment(&fragments, sql[start:i+1], true)
			start = i + 1
		}
	}

	if start < len(sql) {
		appendFragment(&fragments, sql[start:], false)
	}

	return fragments
}

func appendFragment(fragments *[]Fragment, text string, terminated bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.Trim(trimmed, ";") == "" {
		return
	}
	*fragments = append(*fragments, Fragment{Text: strings.TrimSpace(text), Terminated: terminated})
}
