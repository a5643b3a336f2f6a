package srcset

// isASCIIWhitespace reports whether r belongs to the whitespace class of the
// srcset micro-grammar: space, tab, line feed, form feed, carriage return.
// Other space-like characters (U+00A0, U+000B, ...) are ordinary URL or
// descriptor text, not separators.
func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// eatWhitespaceAndCommas returns the index of the first character at or after
// i that is neither ASCII whitespace nor a comma.
func eatWhitespaceAndCommas(s []rune, i int32) int32 {
	for i < len32(s) && (isASCIIWhitespace(s[i]) || s[i] == ',') {
		i++
	}
	return i
}

// eatNonWhitespace returns the index of the first ASCII whitespace character
// at or after i. Commas are not separators here: a URL may contain them.
func eatNonWhitespace(s []rune, i int32) int32 {
	for i < len32(s) && !isASCIIWhitespace(s[i]) {
		i++
	}
	return i
}

func len32(s []rune) int32 {
	return int32(len(s))
}
