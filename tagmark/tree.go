package tagmark

import "strings"

// Tree is the arena-backed tag tree. Nodes[0] is the root.
type Tree struct {
	// Input is the parsed message, after the placeholder expansion.
	Input string

	// Nodes stores all the nodes.
	Nodes []Node

	// MaxDepth is the deepest nesting level reached.
	MaxDepth int
}

func newTree(input string, tokens int) *Tree {
	root := newNode(NodeRoot, Token{Type: TokenText, Span: Span{0, len(input)}})

	nodes := make([]Node, 1, tokens+1)
	nodes[0] = root

	return &Tree{Input: input, Nodes: nodes}
}

func (t *Tree) Root() *Node {
	return &t.Nodes[0]
}

func (t *Tree) Node(idx int) *Node {
	return &t.Nodes[idx]
}

// appendNode appends node to the arena and links it as the last child of the parent at parentIdx.
// Returns the index of the newly appended node.
func (t *Tree) appendNode(parentIdx int, node Node) int {
	nodeIdx := len(t.Nodes)

	node.Parent = parentIdx
	node.Depth = t.Nodes[parentIdx].Depth + 1
	t.Nodes = append(t.Nodes, node)
	t.MaxDepth = max(t.MaxDepth, node.Depth)

	parent := &t.Nodes[parentIdx]
	parent.ChildCount++

	if parent.FirstChild == -1 {
		parent.FirstChild = nodeIdx
		parent.LastChild = nodeIdx
		return nodeIdx
	}

	t.Nodes[parent.LastChild].NextSibling = nodeIdx
	parent.LastChild = nodeIdx

	return nodeIdx
}

// Children returns the indices of the children of the node at idx, in order.
func (t *Tree) Children(idx int) []int {
	n := &t.Nodes[idx]
	out := make([]int, 0, n.ChildCount)
	for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// String dumps the tree, one node per line, indented by depth.
func (t *Tree) String() string {
	var sb strings.Builder
	t.dump(&sb, 0)
	return sb.String()
}

func (t *Tree) dump(sb *strings.Builder, idx int) {
	n := &t.Nodes[idx]

	sb.WriteString(strings.Repeat("  ", n.Depth))
	sb.WriteString(n.Label())

	if n.ChildCount == 0 {
		sb.WriteByte('\n')
		return
	}

	sb.WriteString(" {\n")
	for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
		t.dump(sb, c)
	}
	sb.WriteString(strings.Repeat("  ", n.Depth))
	sb.WriteString("}\n")
}

// Label is the one-line description of the node used in the tree dump, e.g. Tag('click':'run_command':'/help').
func (n *Node) Label() string {
	switch n.Type {
	case NodeText:
		return "Text(" + quote(n.Value) + ")"
	case NodePlaceholder:
		return "Placeholder(" + quote(n.Replacement.PlainText()) + ")"
	case NodeTag:
		parts := make([]string, len(n.Parts))
		for i, p := range n.Parts {
			parts[i] = quote(p.Value)
		}
		return "Tag(" + strings.Join(parts, string(Separator)) + ")"
	}

	return "Root"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "\n", `\n`) + "'"
}
