package tagmark

// NodeType defines the semantic kind of a tree Node.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeText
	NodeTag
	NodePlaceholder

	// NumNodeTypes is the total number of Node types. Should be placed as last const.
	NumNodeTypes
)

var nodeTypeToString = [NumNodeTypes]string{
	NodeRoot:        "Root",
	NodeText:        "Text",
	NodeTag:         "Tag",
	NodePlaceholder: "Placeholder",
}

func (t NodeType) String() string {
	if t < 0 || t >= NumNodeTypes {
		return "Unknown"
	}
	return nodeTypeToString[t]
}

// Node represents a single tree node.
// Nodes are stored in an arena and linked via indices, -1 meaning none.
type Node struct {
	// Type indicates the variant of the node.
	Type NodeType

	// Token is the source token. The root's Token is a text Token spanning the whole input.
	Token Token

	Parent      int
	FirstChild  int
	LastChild   int
	NextSibling int

	// ChildCount is the number of children of this node.
	ChildCount int

	// Depth is the number of ancestors, 0 for the root.
	Depth int

	// Value is the unescaped text of NodeText nodes.
	Value string

	// Parts are the unquoted values of a NodeTag's token, the first one being the name.
	Parts []TagPart

	// Tag is the resolved behavior of a NodeTag.
	Tag Tag

	// Replacement is the value of a NodePlaceholder.
	Replacement Replacement

	// Closed is true for NodeTag nodes whose scope was closed, explicitly or not.
	Closed bool
}

func newNode(typ NodeType, tok Token) Node {
	return Node{
		Type:        typ,
		Token:       tok,
		Parent:      -1,
		FirstChild:  -1,
		LastChild:   -1,
		NextSibling: -1,
	}
}

// Name is the tag's name as written, or "" for non-tag nodes.
func (n *Node) Name() string {
	if len(n.Parts) == 0 {
		return ""
	}
	return n.Parts[0].Value
}

// Args returns the tag parts after the name as Arguments.
func (n *Node) Args() []Argument {
	if len(n.Parts) < 2 {
		return nil
	}
	args := make([]Argument, len(n.Parts)-1)
	for i, p := range n.Parts[1:] {
		args[i] = NewArgument(p.Value)
	}
	return args
}
