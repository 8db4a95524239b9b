package tagmark

import (
	"errors"
	"fmt"
)

// processOpenTag appends the node made of the opening tag token to the current node,
// and makes it the current one if the tag has a scope.
func (b *treeBuilder) processOpenTag(tok Token) error {
	if len(tok.Values) == 0 {
		return fmt.Errorf("%w: opening tag at %d has no values", ErrMalformedToken, tok.Span.Start)
	}

	parts := tagParts(b.tree.Input, tok)
	name := parts[0].Value

	if IsReset(name) {
		return b.reset(tok)
	}

	// string placeholders were expanded before tokenizing, only component ones are left
	if r, ok := b.opts.Placeholders.ResolvePlaceholder(name); ok && !r.IsString() {
		n := newNode(NodePlaceholder, tok)
		n.Replacement = r
		b.tree.appendNode(b.current(), n)
		return nil
	}

	if !b.opts.IsTagName(name, true) {
		b.opts.Warnings.addf(IssueUnknownTag, tok.Span, "unknown tag %q kept as plain text", name)
		b.appendText(tok.Span)
		return nil
	}

	node := newNode(NodeTag, tok)
	node.Parts = parts

	tag, err := b.opts.ResolveTag(&node)
	if err != nil || tag == nil {
		if nestedFailure(err) {
			return err
		}
		if err == nil {
			err = fmt.Errorf("tag %q resolved to nothing", name)
		}
		b.opts.Warnings.addf(IssueTagResolveFailed, tok.Span, "%v; kept as plain text", err)
		b.appendText(tok.Span)
		return nil
	}

	node.Tag = tag

	switch t := tag.(type) {
	case Directive:
		if t.Directive() == DirectiveReset {
			return b.reset(tok)
		}
		return nil

	case Inserting:
		if !t.AllowsChildren() {
			b.tree.appendNode(b.current(), node)
			return nil
		}

	case Modifying:

	default:
		b.opts.Warnings.addf(IssueTagResolveFailed, tok.Span, "tag %q has unsupported kind %d; kept as plain text", name, tag.Kind())
		b.appendText(tok.Span)
		return nil
	}

	return b.open(node)
}

// open appends the node and makes it the current one.
func (b *treeBuilder) open(node Node) error {
	// breadcrumbs hold the root too
	if len(b.breadcrumbs) > b.opts.MaxDepth {
		name := node.Name()
		msg := fmt.Sprintf("Maximum nesting depth of %d exceeded by tag %s.", b.opts.MaxDepth, name)
		return newParseError(IssueMaxDepthExceeded, b.tree.Input, msg, []string{name}, node.Token.Span)
	}

	idx := b.tree.appendNode(b.current(), node)
	b.pushCrumb(idx)

	return nil
}

// reset closes every open tag, which is not allowed in strict mode.
func (b *treeBuilder) reset(tok Token) error {
	if b.opts.Strict {
		msg := "<reset> tags are not allowed when strict mode is enabled"
		return newParseError(IssueResetInStrictMode, b.tree.Input, msg, []string{Reset}, tok.Span)
	}

	b.closeAll()
	return nil
}

// nestedFailure reports whether err comes from markup parsed by the factory itself, e.g. a hover text.
// Such failures abort the whole parse the same way they would at the top level.
func nestedFailure(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) || errors.Is(err, ErrHoverCycle)
}
