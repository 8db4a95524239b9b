package tagmark

type secondPassState uint8

const (
	secondPassNormal secondPassState = iota
	secondPassString
)

// splitTagValues fills tok.Values with the colon-separated parts found strictly inside the tag delimiters.
//
// A colon followed by "//" does not split, so URLs survive. Colons inside quoted strings do not split either.
// Adjacent separators produce empty values and the rest after the last separator always becomes the last value.
func splitTagValues(message string, tok *Token) {
	start := tok.Span.Start + 1
	if tok.Type == TokenCloseTag {
		start++
	}
	end := tok.Span.End - 1

	state := secondPassNormal
	escaped := false
	var quote byte

	marker := start

	for i := start; i < end; i++ {
		b := message[i]

		if escaped {
			escaped = false
			continue
		}

		if b == EscapeChar && i+1 < len(message) {
			next := message[i+1]

			switch state {
			case secondPassNormal:
				escaped = next == TagStart
			case secondPassString:
				escaped = next == quote
			}

			if escaped {
				continue
			}
		}

		switch state {
		case secondPassNormal:
			switch b {
			case Separator:
				if i+2 < len(message) && message[i+1] == '/' && message[i+2] == '/' {
					break
				}

				tok.Values = append(tok.Values, Token{Type: TokenTagValue, Span: Span{marker, i}})
				marker = i + 1

			case '\'', '"':
				state = secondPassString
				quote = b
			}

		case secondPassString:
			if b == quote {
				state = secondPassNormal
			}
		}
	}

	tok.Values = append(tok.Values, Token{Type: TokenTagValue, Span: Span{marker, end}})
}
