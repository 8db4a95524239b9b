package tagmark

import (
	"strings"
)

// checkUnclosed deals with the tags left open at the end of the input.
// Lenient mode closes them, strict mode reports them innermost first.
func (b *treeBuilder) checkUnclosed() error {
	if len(b.breadcrumbs) == 1 {
		return nil
	}

	if !b.opts.Strict {
		b.closeAll()
		return nil
	}

	open := b.breadcrumbs[1:]
	names := make([]string, 0, len(open))
	spans := make([]Span, 0, len(open))

	for i := len(open) - 1; i >= 0; i-- {
		names = append(names, b.tree.Node(open[i]).Name())
	}
	for _, idx := range open {
		spans = append(spans, b.tree.Node(idx).Token.Span)
	}

	msg := "All tags must be explicitly closed while in strict mode. End of string found with open tags: " +
		strings.Join(names, ", ")

	return newParseError(IssueUnclosedTag, b.tree.Input, msg, names, spans...)
}
