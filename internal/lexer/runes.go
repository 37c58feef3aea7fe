package lexer

// Runes
//
const (
	runeHash    = '#'
	runeDQuote  = '"'
	runeNewline = '\n'
)

// isWhitespace matches space, tab, newline and carriage return.
//
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isAlphaUnder(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphaNumUnder(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isStringChar matches any rune that may appear inside a quoted string.
// No escapes: the only terminator is the next double quote.
//
func isStringChar(r rune) bool {
	return r != runeDQuote
}
