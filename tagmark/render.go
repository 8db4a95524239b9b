package tagmark

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/styled"
)

// Render realizes the tree as a single styled component and simplifies the result with [Flatten].
// Every Modifying tag of the tree is used up by the call.
func Render(tree *Tree) (*styled.Component, error) {
	r := renderer{tree: tree}

	c, err := r.render(0)
	if err != nil {
		return nil, err
	}

	return Flatten(c), nil
}

type renderer struct {
	tree *Tree

	// hovers are the hover payloads of the enclosing inserted components
	hovers []*styled.Component
}

func (r *renderer) render(idx int) (*styled.Component, error) {
	n := r.tree.Node(idx)

	var (
		comp *styled.Component
		mod  Modifying
	)

	switch n.Type {
	case NodeRoot:
		comp = styled.Empty()

	case NodeText:
		comp = styled.Text(n.Value)

	case NodePlaceholder:
		if n.Replacement.IsString() {
			comp = styled.Text(n.Replacement.Text())
			break
		}
		comp = n.Replacement.Component()
		if err := r.checkHoverCycle(comp, n); err != nil {
			return nil, err
		}

	case NodeTag:
		switch t := n.Tag.(type) {
		case Inserting:
			comp = t.Value()
			if err := r.checkHoverCycle(comp, n); err != nil {
				return nil, err
			}
		case Modifying:
			mod = t
			r.visit(idx, mod)
			mod.PostVisit()
			comp = styled.Empty()
		default:
			comp = styled.Empty()
		}
	}

	if n.ChildCount == 0 {
		return r.finish(comp, mod), nil
	}

	pushed := false
	if h := comp.Style.Hover; h != nil && h.Text != nil {
		r.hovers = append(r.hovers, h.Text)
		pushed = true
	}

	children := make([]*styled.Component, 0, len(comp.Children)+n.ChildCount)
	children = append(children, comp.Children...)

	for c := n.FirstChild; c != -1; c = r.tree.Nodes[c].NextSibling {
		child, err := r.render(c)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if pushed {
		r.hovers = r.hovers[:len(r.hovers)-1]
	}

	return r.finish(comp.WithChildren(children), mod), nil
}

func (r *renderer) finish(comp *styled.Component, mod Modifying) *styled.Component {
	if mod == nil {
		return comp
	}
	return applyModifying(mod, comp, 0)
}

// visit calls m.Visit for every descendant of the node at idx, in document order.
func (r *renderer) visit(idx int, m Modifying) {
	base := r.tree.Node(idx).Depth

	stack := []int{}
	for _, c := range reversed(r.tree.Children(idx)) {
		stack = append(stack, c)
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := r.tree.Node(cur)
		m.Visit(n, n.Depth-base)

		for _, c := range reversed(r.tree.Children(cur)) {
			stack = append(stack, c)
		}
	}
}

func reversed(s []int) []int {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// applyModifying replaces current and each of its descendants by the output of m.Apply.
func applyModifying(m Modifying, current *styled.Component, depth int) *styled.Component {
	out := m.Apply(current, depth)

	if len(current.Children) == 0 {
		return out
	}

	children := make([]*styled.Component, 0, len(out.Children)+len(current.Children))
	children = append(children, out.Children...)
	for _, child := range current.Children {
		children = append(children, applyModifying(m, child, depth+1))
	}

	return out.WithChildren(children)
}

// checkHoverCycle rejects comp if it is, or is inside, its own hover payload or the hover payload of
// an enclosing component.
func (r *renderer) checkHoverCycle(comp *styled.Component, n *Node) error {
	if comp == nil {
		return fmt.Errorf("node at %d inserts no component", n.Token.Span.Start)
	}

	if h := comp.Style.Hover; h != nil && h.Text != nil && styled.Contains(h.Text, comp) {
		return fmt.Errorf("%w: %q at %d", ErrHoverCycle, n.Token.Raw(r.tree.Input), n.Token.Span.Start)
	}

	for _, payload := range r.hovers {
		if styled.Contains(payload, comp) {
			return fmt.Errorf("%w: %q at %d", ErrHoverCycle, n.Token.Raw(r.tree.Input), n.Token.Span.Start)
		}
	}

	return nil
}
