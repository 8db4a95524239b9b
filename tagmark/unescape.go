package tagmark

import (
	"strings"
	"unicode/utf8"
)

// Unescape returns text[start:end] with every EscapeChar removed which precedes a rune accepted by escapes.
// Other escape chars are kept verbatim.
func Unescape(text string, start, end int, escapes func(r rune) bool) string {
	s := text[start:end]
	if strings.IndexByte(s, EscapeChar) == -1 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == EscapeChar && i+1 < len(s) {
			r, w := utf8.DecodeRuneInString(s[i+1:])
			if escapes(r) {
				sb.WriteString(s[i+1 : i+1+w])
				i += w
				continue
			}
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}

// textEscapes accepts the runes escapable in plain text.
func textEscapes(r rune) bool {
	return r == rune(TagStart) || r == rune(EscapeChar)
}
