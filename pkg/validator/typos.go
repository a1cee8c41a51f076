package validator

// keywordTypos maps common misspellings of SQL keywords to their canonical
// form. The table is read-only for the process lifetime and is consulted by
// the keyword-typo and invalid-command rules.
var keywordTypos = map[string]string{
	"SELCT":   "SELECT",
	"SLEECT":  "SELECT",
	"SLECT":   "SELECT",
	"SELECCT": "SELECT",
	"INSERTT": "INSERT",
	"INSRT":   "INSERT",
	"UPDAATE": "UPDATE",
	"UDPATE":  "UPDATE",
	"DELETEE": "DELETE",
	"DELEET":  "DELETE",
	"FORM":    "FROM",
	"FRON":    "FROM",
	"WHREE":   "WHERE",
	"WHER":    "WHERE",
	"WEHERE":  "WHERE",
	"GROPU":   "GROUP",
	"GRUP":    "GROUP",
	"ORDERR":  "ORDER",
	"ODER":    "ORDER",
	"HAVNG":   "HAVING",
	"HAVIG":   "HAVING",
}

// typoCorrection returns the canonical keyword for a misspelling, if the
// upper-cased word is in the typo table.
func typoCorrection(upper string) (string, bool) {
	canonical, ok := keywordTypos[upper]
	return canonical, ok
}

// isTypoCorrection reports whether the upper-cased word is one of the
// canonical keywords the typo table corrects to.
func isTypoCorrection(upper string) bool {
	for _, canonical := range keywordTypos {
		if canonical == upper {
			return true
		}
	}
	return false
}
