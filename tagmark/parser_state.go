package tagmark

// treeBuilder holds all mutable state of the tree construction.
//
// breadcrumbs are the indices of the open nodes forming the path from the root to the
// innermost open tag. The bottom element is always the root, the top one is the node
// new children get appended to.
type treeBuilder struct {
	tree        *Tree
	opts        BuildOptions
	breadcrumbs []int
}

func newTreeBuilder(message string, tokens []Token, opts BuildOptions) *treeBuilder {
	return &treeBuilder{
		tree:        newTree(message, len(tokens)),
		opts:        opts,
		breadcrumbs: []int{0}, // root is always present
	}
}

// current returns the index of the innermost open node.
func (b *treeBuilder) current() int {
	return b.breadcrumbs[len(b.breadcrumbs)-1]
}

func (b *treeBuilder) pushCrumb(idx int) {
	b.breadcrumbs = append(b.breadcrumbs, idx)
}

// closeFrom closes the open node at breadcrumb level and everything opened inside of it.
func (b *treeBuilder) closeFrom(level int) {
	for _, idx := range b.breadcrumbs[level:] {
		b.tree.Nodes[idx].Closed = true
	}
	b.breadcrumbs = b.breadcrumbs[:level]
}

func (b *treeBuilder) closeAll() {
	b.closeFrom(1)
}

// appendText adds the unescaped text of span as a child of the current node.
func (b *treeBuilder) appendText(span Span) {
	n := newNode(NodeText, Token{Type: TokenText, Span: span})
	n.Value = Unescape(b.tree.Input, span.Start, span.End, textEscapes)
	b.tree.appendNode(b.current(), n)
}
