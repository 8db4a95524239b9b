package tagmark

import (
	"fmt"
)

// processCloseTag closes the innermost open tag matched by the closing tag token.
func (b *treeBuilder) processCloseTag(tok Token) error {
	if len(tok.Values) == 0 {
		return fmt.Errorf("%w: closing tag at %d has no values", ErrMalformedToken, tok.Span.Start)
	}

	closeParts := make([]string, len(tok.Values))
	for i, v := range tok.Values {
		closeParts[i], _ = unquoteAndEscape(b.tree.Input, v.Span.Start, v.Span.End)
	}
	name := closeParts[0]

	if IsReset(name) {
		return nil
	}

	if !b.opts.IsTagName(name, false) {
		b.opts.Warnings.addf(IssueUnknownTag, tok.Span, "unknown closing tag %q kept as plain text", name)
		b.appendText(tok.Span)
		return nil
	}

	top := len(b.breadcrumbs) - 1

	for level := top; level > 0; level-- {
		open := b.tree.Node(b.breadcrumbs[level])
		if !tagCloses(closeParts, open.Parts) {
			continue
		}

		if level != top && b.opts.Strict {
			cur := b.tree.Node(b.current())
			msg := fmt.Sprintf(
				"Unclosed tag encountered; %s is not closed, because %s was closed first.",
				cur.Name(), name,
			)
			return newParseError(
				IssueCloseOrder, b.tree.Input, msg,
				[]string{cur.Name(), open.Name()},
				open.Token.Span, cur.Token.Span, tok.Span,
			)
		}

		b.closeFrom(level)
		return nil
	}

	b.opts.Warnings.addf(IssueUnmatchedCloseTag, tok.Span, "closing tag %q matches no open tag; kept as plain text", name)
	b.appendText(tok.Span)
	return nil
}
