package tagmark

import "github.com/Drolfothesgnir/tagmark/styled"

// Flatten removes the redundant empty text wrappers of the component tree, bottom-up:
//
//   - an unstyled empty text with one child becomes the child;
//   - an unstyled empty text whose first child is unstyled text takes over that child's content;
//   - a styled empty text with one child becomes the child, which inherits the missing style.
func Flatten(c *styled.Component) *styled.Component {
	if len(c.Children) == 0 {
		return c
	}

	children := make([]*styled.Component, len(c.Children))
	for i, ch := range c.Children {
		children[i] = Flatten(ch)
	}
	c = c.WithChildren(children)

	if !c.IsText() || c.Content != "" {
		return c
	}

	unstyled := !c.HasStyling()

	switch {
	case unstyled && len(children) == 1:
		return children[0]

	case unstyled:
		first := children[0]
		if !first.IsText() || first.HasStyling() {
			return c
		}

		rest := make([]*styled.Component, 0, len(first.Children)+len(children)-1)
		rest = append(rest, first.Children...)
		rest = append(rest, children[1:]...)

		return c.WithContent(first.Content).WithChildren(rest)

	case len(children) == 1:
		child := children[0]
		return child.WithStyle(child.Style.Merge(c.Style))
	}

	return c
}
