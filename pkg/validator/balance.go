package validator

import "strings"

// parenScan is the result of one left-to-right balance scan over a
// statement's text.
type parenScan struct {
	// openCount and closeCount are raw character counts.
	openCount  int
	closeCount int

	// unmatchedClosers holds the position of every ')' that had no opener
	// on the stack when it was seen.
	unmatchedClosers []int

	// unmatchedOpeners holds the position of every '(' still on the stack
	// after the scan.
	unmatchedOpeners []int
}

// scanParens runs the stack-based parenthesis scan. Quotes do not shield
// parentheses here; the scan is deliberately independent of the tokenizer so
// it still works when lexing misfires.
func scanParens(text string) parenScan {
	var scan parenScan
	var stack []int

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			scan.openCount++
			stack = append(stack, i)
		case ')':
			scan.closeCount++
			if len(stack) == 0 {
				scan.unmatchedClosers = append(scan.unmatchedClosers, i)
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}

	scan.unmatchedOpeners = stack
	return scan
}

// balanced reports whether the scan found no imbalance of any kind.
func (s parenScan) balanced() bool {
	return s.openCount == s.closeCount && len(s.unmatchedClosers) == 0
}

// quoteParity counts occurrences of the given quote character. Quote
// checking is parity-only since quotes do not nest; escaped quotes inside
// strings are not distinguished from terminators, so the result is advisory.
func quoteParity(text string, quote byte) (count int, unmatched bool) {
	count = strings.Count(text, string(quote))
	return count, count%2 != 0
}
