package tagmark

type SerializableTree struct {
	Tree     SerializableNode `json:"tree"`
	MaxDepth int              `json:"max_depth"`
	Warnings []Warning        `json:"warnings,omitempty"`
}

type SerializableNode struct {
	Type     string             `json:"type"`
	Name     string             `json:"name,omitempty"`
	Args     []string           `json:"args,omitempty"`
	Content  string             `json:"content,omitempty"`
	Span     Span               `json:"span"`
	Children []SerializableNode `json:"children,omitempty"`
}

// Serialize converts the Tree into the nested form, suitable for JSON encoding.
func (t *Tree) Serialize(warns *Warnings) SerializableTree {
	out := SerializableTree{
		Tree:     t.serializeNode(0),
		MaxDepth: t.MaxDepth,
	}
	if warns != nil {
		out.Warnings = warns.List()
	}
	return out
}

func (t *Tree) serializeNode(idx int) SerializableNode {
	n := &t.Nodes[idx]

	sn := SerializableNode{
		Type: n.Type.String(),
		Span: n.Token.Span,
	}

	switch n.Type {
	case NodeText:
		sn.Content = n.Value
	case NodePlaceholder:
		sn.Content = n.Replacement.PlainText()
	case NodeTag:
		sn.Name = n.Name()
		for _, a := range n.Args() {
			sn.Args = append(sn.Args, a.Value())
		}
	}

	if n.ChildCount > 0 {
		sn.Children = make([]SerializableNode, 0, n.ChildCount)
		for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
			sn.Children = append(sn.Children, t.serializeNode(c))
		}
	}

	return sn
}
