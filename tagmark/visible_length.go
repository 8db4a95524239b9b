package tagmark

import (
	"unicode/utf8"

	"github.com/Drolfothesgnir/tagmark/styled"
)

// VisibleLength is the number of runes the node itself contributes to the rendered text.
// Children are not counted.
func VisibleLength(n *Node) int {
	switch n.Type {
	case NodeText:
		return utf8.RuneCountInString(n.Value)
	case NodePlaceholder:
		return utf8.RuneCountInString(n.Replacement.PlainText())
	case NodeTag:
		if ins, ok := n.Tag.(Inserting); ok {
			return utf8.RuneCountInString(styled.PlainText(ins.Value()))
		}
	}
	return 0
}
