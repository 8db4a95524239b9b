package tags

import (
	"unicode/utf8"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

// colorSource yields the successive colors of a color transition.
type colorSource interface {
	// init is called once the number of colored runes is known.
	init(size int)

	// next returns the current color and moves to the following one.
	next() styled.Color

	// peek returns the current color without moving.
	peek() styled.Color
}

// colorChanging is the Modifying tag coloring every rune of its content with the colors of src.
//
// Descendants with their own color keep it, but still consume colors, so the transition
// continues behind them. Non-text components keep their kind and take the current color
// without consuming it. Instances can not be reused.
type colorChanging struct {
	src colorSource

	size    int
	visited bool

	// disabledDepth is the depth of the outermost colored component being skipped, or -1
	disabledDepth int
}

func newColorChanging(src colorSource) *colorChanging {
	return &colorChanging{src: src, disabledDepth: -1}
}

func (t *colorChanging) Kind() tagmark.Kind {
	return tagmark.KindModifying
}

func (t *colorChanging) Visit(n *tagmark.Node, _ int) {
	if t.visited {
		panic("tags: color changing tag instances can not be reused, create a new one for every tag")
	}
	t.size += tagmark.VisibleLength(n)
}

func (t *colorChanging) PostVisit() {
	t.visited = true
	t.src.init(t.size)
}

func (t *colorChanging) Apply(c *styled.Component, depth int) *styled.Component {
	if (t.disabledDepth != -1 && depth > t.disabledDepth) || c.Style.Color != nil {
		if t.disabledDepth == -1 || depth < t.disabledDepth {
			t.disabledDepth = depth
		}

		if c.IsText() {
			for range utf8.RuneCountInString(c.Content) {
				t.src.next()
			}
		}
		return c.WithChildren(nil)
	}

	t.disabledDepth = -1

	if !c.IsText() {
		return c.WithChildren(nil).WithColor(t.src.peek())
	}

	out := styled.Empty().WithStyle(c.Style)
	if c.Content == "" {
		return out
	}

	runes := make([]*styled.Component, 0, utf8.RuneCountInString(c.Content))
	for _, r := range c.Content {
		runes = append(runes, styled.Text(string(r)).WithColor(t.src.next()))
	}

	return out.WithChildren(runes)
}
