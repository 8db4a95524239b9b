package tagmark

import (
	"errors"

	"github.com/Drolfothesgnir/tagmark/styled"
)

// Context is handed to the tag factories during one parse.
type Context struct {
	parser       *Parser
	placeholders PlaceholderResolver
}

// Deserialize parses the nested markup, e.g. a hover text, with the same parser and placeholders.
// In strict mode its [ParseError] fails the enclosing parse too.
func (c *Context) Deserialize(markup string) (*styled.Component, error) {
	if c.parser == nil {
		return nil, errors.New("no parser bound to the context")
	}
	return c.parser.Parse(markup, c.placeholders)
}
