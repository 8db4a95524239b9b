package tagmark

// Tokenize transforms the message into the flat sequence of text and tag Tokens.
// Every tag Token carries its TokenTagValue children.
func Tokenize(message string) []Token {
	c := newTokenCollector(message)
	scanString(message, c)

	for i := range c.tokens {
		tok := &c.tokens[i]
		if tok.Type == TokenOpenTag || tok.Type == TokenCloseTag {
			splitTagValues(message, tok)
		}
	}

	return c.tokens
}
