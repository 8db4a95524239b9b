package tagmark

// BuildOptions configure [BuildTree].
type BuildOptions struct {
	// ResolveTag creates the Tag for the tag node. A nil Tag or an error keeps the tag as plain text.
	ResolveTag func(n *Node) (Tag, error)

	// IsTagName reports whether the name is a known tag, or a placeholder if includePlaceholders is true.
	IsTagName func(name string, includePlaceholders bool) bool

	// Placeholders resolve the tags standing for placeholders.
	Placeholders PlaceholderResolver

	// Strict turns the recoverable problems into a [ParseError].
	Strict bool

	// MaxDepth is the maximum number of simultaneously open tags. Zero means [DefaultMaxDepth].
	MaxDepth int

	// Warnings collect the recoverable problems. May be nil.
	Warnings *Warnings
}

// BuildTree arranges the tokens of the message into a Tree.
//
// In lenient mode every tag which can not be resolved or matched is kept as plain text, a closing tag
// closes every tag opened after its match, and tags left open at the end are closed implicitly.
// In strict mode those cases fail with a [ParseError], except unknown tags, which are plain text in both modes.
func BuildTree(tokens []Token, message string, opts BuildOptions) (*Tree, error) {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Placeholders == nil {
		opts.Placeholders = NoPlaceholders
	}
	if opts.IsTagName == nil {
		opts.IsTagName = func(string, bool) bool { return false }
	}
	if opts.ResolveTag == nil {
		opts.ResolveTag = func(*Node) (Tag, error) { return nil, nil }
	}

	b := newTreeBuilder(message, tokens, opts)

	for _, tok := range tokens {
		var err error

		switch tok.Type {
		case TokenText:
			b.appendText(tok.Span)
		case TokenOpenTag:
			err = b.processOpenTag(tok)
		case TokenCloseTag:
			err = b.processCloseTag(tok)
		}

		if err != nil {
			return nil, err
		}
	}

	if err := b.checkUnclosed(); err != nil {
		return nil, err
	}

	return b.tree, nil
}
