package styled

import "strings"

// Decoration is a boolean text attribute such as bold or italic.
type Decoration int

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated

	// NumDecorations is the total number of Decorations. Should be placed as last const.
	NumDecorations
)

var decorationNames = [NumDecorations]string{
	Bold:          "bold",
	Italic:        "italic",
	Underlined:    "underlined",
	Strikethrough: "strikethrough",
	Obfuscated:    "obfuscated",
}

func (d Decoration) String() string {
	if d < 0 || d >= NumDecorations {
		return "unknown"
	}
	return decorationNames[d]
}

// DecorationByName resolves the canonical decoration name.
func DecorationByName(name string) (Decoration, bool) {
	name = strings.ToLower(name)
	for i, n := range decorationNames {
		if n == name {
			return Decoration(i), true
		}
	}

	return 0, false
}

// State is a tri-state flag: a decoration can be unset, explicitly on, or explicitly off.
type State uint8

const (
	NotSet State = iota
	True
	False
)

// StateOf converts a bool to an explicit State.
func StateOf(b bool) State {
	if b {
		return True
	}
	return False
}
