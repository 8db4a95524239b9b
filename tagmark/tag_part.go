package tagmark

// TagPart is the unescaped value of one colon-separated part of a tag.
type TagPart struct {
	// Value is the unquoted and unescaped text of the part.
	Value string

	// Quoted is true if the part was wrapped in quotes in the source.
	Quoted bool

	// Token is the TokenTagValue the part was made from.
	Token Token
}

func newTagPart(message string, tok Token) TagPart {
	v, quoted := unquoteAndEscape(message, tok.Span.Start, tok.Span.End)
	return TagPart{Value: v, Quoted: quoted, Token: tok}
}

func tagParts(message string, tok Token) []TagPart {
	parts := make([]TagPart, len(tok.Values))
	for i, v := range tok.Values {
		parts[i] = newTagPart(message, v)
	}
	return parts
}

// unquoteAndEscape strips the surrounding quotes of text[start:end], if any, and removes the escapes of the quote
// char and of the escape char itself. Unquoted parts are returned verbatim.
func unquoteAndEscape(text string, start, end int) (value string, quoted bool) {
	if start == end {
		return "", false
	}

	first := text[start]
	if first != '\'' && first != '"' {
		return text[start:end], false
	}

	last := text[end-1]
	start++
	if end > start && (last == '\'' || last == '"') {
		end--
	}

	return Unescape(text, start, end, func(r rune) bool {
		return r == rune(first) || r == rune(EscapeChar)
	}), true
}
