package tagmark

import (
	"strings"
)

// ResolvePlaceholders substitutes the string placeholders of the message with their markup, again and again,
// until the message stops changing or maxPasses passes are made, and returns the last state.
// Names known to isTagName are never substituted. Component placeholders are left for the tree builder.
func ResolvePlaceholders(message string, isTagName func(name string) bool, placeholders PlaceholderResolver, maxPasses int) string {
	if placeholders == nil {
		return message
	}

	result := message
	for pass := 0; pass < maxPasses; pass++ {
		c := &placeholderExpander{
			input:        result,
			end:          -1,
			isTagName:    isTagName,
			placeholders: placeholders,
		}
		scanString(result, c)

		next := c.sb.String()
		if next == result {
			break
		}
		result = next
	}

	return result
}

// placeholderExpander is a matchConsumer rebuilding the input with the string placeholders substituted.
type placeholderExpander struct {
	input        string
	sb           strings.Builder
	end          int
	isTagName    func(name string) bool
	placeholders PlaceholderResolver
}

func (c *placeholderExpander) accept(start, end int, typ TokenType) {
	c.end = end

	if typ == TokenOpenTag {
		name := openTagName(c.input, start, end)
		if !c.isTagName(name) {
			if r, ok := c.placeholders.ResolvePlaceholder(name); ok && r.IsString() {
				c.sb.WriteString(r.Text())
				return
			}
		}
	}

	c.sb.WriteString(c.input[start:end])
}

func (c *placeholderExpander) lastEnd() int {
	return c.end
}

// openTagName returns the name of the opening tag spanning input[start:end].
func openTagName(input string, start, end int) string {
	tok := Token{Type: TokenOpenTag, Span: Span{start, end}}
	splitTagValues(input, &tok)
	name, _ := unquoteAndEscape(input, tok.Values[0].Span.Start, tok.Values[0].Span.End)
	return name
}

// ResolveStringPlaceholders substitutes, once, every argument-less tag naming a string placeholder and keeps
// every other part of the message, tags included, as it is.
func ResolveStringPlaceholders(message string, placeholders PlaceholderResolver) string {
	if placeholders == nil {
		return message
	}

	var sb strings.Builder
	sb.Grow(len(message))

	for _, tok := range Tokenize(message) {
		if tok.Type == TokenOpenTag && len(tok.Values) == 1 {
			name, _ := unquoteAndEscape(message, tok.Values[0].Span.Start, tok.Values[0].Span.End)
			if r, ok := placeholders.ResolvePlaceholder(name); ok && r.IsString() {
				sb.WriteString(r.Text())
				continue
			}
		}
		sb.WriteString(tok.Raw(message))
	}

	return sb.String()
}
