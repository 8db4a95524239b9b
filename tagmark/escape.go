package tagmark

import "strings"

// Escape returns the message with every tag whose name is known to isTagName escaped,
// so that it parses as plain text.
func Escape(message string, isTagName func(name string) bool) string {
	var sb strings.Builder
	sb.Grow(len(message) + len(message)/8)

	for _, tok := range Tokenize(message) {
		if isKnownTag(message, tok, isTagName) {
			sb.WriteByte(EscapeChar)
		}
		sb.WriteString(tok.Raw(message))
	}

	return sb.String()
}

// Strip returns the message with every tag whose name is known to isTagName removed.
// Unknown tags and escapes are kept.
func Strip(message string, isTagName func(name string) bool) string {
	var sb strings.Builder
	sb.Grow(len(message))

	for _, tok := range Tokenize(message) {
		if !isKnownTag(message, tok, isTagName) {
			sb.WriteString(tok.Raw(message))
		}
	}

	return sb.String()
}

func isKnownTag(message string, tok Token, isTagName func(name string) bool) bool {
	if tok.Type != TokenOpenTag && tok.Type != TokenCloseTag {
		return false
	}
	name, _ := unquoteAndEscape(message, tok.Values[0].Span.Start, tok.Values[0].Span.End)
	return IsReset(name) || isTagName(name)
}
