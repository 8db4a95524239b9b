package tagmark

type firstPassState uint8

const (
	firstPassNormal firstPassState = iota
	firstPassTag
	firstPassString
)

// matchConsumer receives the top-level spans discovered by scanString.
type matchConsumer interface {
	accept(start, end int, typ TokenType)

	// lastEnd is the end of the last accepted span or -1 if nothing was accepted yet.
	lastEnd() int
}

// scanString finds the tag boundaries of the message and reports every text, opening tag and closing tag span
// to the consumer, in order.
//
// A '<' followed by any bytes and a '>' is a tag, unless the body is empty. Quoted strings inside a tag may contain '>'.
// "\<" outside of tags and an escaped quote inside quoted strings lose their special meaning.
//
// Every special symbol is a 1-byte ASCII character, so the scan works on bytes. Continuation bytes of multi-byte
// UTF-8 sequences never collide with them.
func scanString(message string, c matchConsumer) {
	n := len(message)

	state := firstPassNormal

	// if true, the current byte was escaped and is skipped
	escaped := false

	currentTokenEnd := 0

	// marker is the starting index of the current tag candidate
	marker := -1

	var quote byte

	for i := 0; i < n; i++ {
		b := message[i]

		if escaped {
			escaped = false
			continue
		}

		if b == EscapeChar && i+1 < n {
			next := message[i+1]

			switch state {
			case firstPassNormal:
				escaped = next == TagStart
			case firstPassString:
				escaped = next == quote
			}

			if escaped {
				continue
			}
		}

		switch state {
		case firstPassNormal:
			if b == TagStart {
				marker = i
				state = firstPassTag
			}

		case firstPassTag:
			switch b {
			case TagEnd:
				// "<>" is not a tag
				if i == marker+1 {
					state = firstPassNormal
					break
				}

				// anything not matched up to this point is plain text
				if currentTokenEnd != marker {
					c.accept(currentTokenEnd, marker, TokenText)
				}
				currentTokenEnd = i + 1

				typ := TokenOpenTag
				if marker+1 < n && message[marker+1] == CloseTag {
					typ = TokenCloseTag
				}

				c.accept(marker, currentTokenEnd, typ)
				state = firstPassNormal

			case TagStart:
				// the previous candidate was not a tag, restart from here
				marker = i

			case '\'', '"':
				state = firstPassString
				quote = b
			}

		case firstPassString:
			if b == quote {
				state = firstPassTag
			}
		}
	}

	end := c.lastEnd()
	if end == -1 {
		c.accept(0, n, TokenText)
	} else if end != n {
		c.accept(end, n, TokenText)
	}
}

// tokenCollector is a matchConsumer which gathers the spans as Tokens.
type tokenCollector struct {
	tokens []Token
	end    int
}

func newTokenCollector(input string) *tokenCollector {
	return &tokenCollector{
		// rough guess: a tag is rarely shorter than 8 bytes
		tokens: make([]Token, 0, len(input)/8+1),
		end:    -1,
	}
}

func (c *tokenCollector) accept(start, end int, typ TokenType) {
	c.end = end
	c.tokens = append(c.tokens, Token{Type: typ, Span: Span{start, end}})
}

func (c *tokenCollector) lastEnd() int {
	return c.end
}
