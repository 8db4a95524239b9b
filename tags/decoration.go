package tags

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

var decorationAliases = map[styled.Decoration][]string{
	styled.Bold:          {"bold", "b"},
	styled.Italic:        {"italic", "i", "em"},
	styled.Underlined:    {"underlined", "u"},
	styled.Strikethrough: {"strikethrough", "st"},
	styled.Obfuscated:    {"obfuscated", "obf"},
}

func registerDecorations(r *tagmark.Registry) {
	for d, names := range decorationAliases {
		negated := make([]string, len(names))
		for i, n := range names {
			negated[i] = "!" + n
		}

		r.MustRegister(decorationTag(d, true), names...)
		r.MustRegister(decorationTag(d, false), negated...)
	}
}

// decorationTag handles <bold>, <bold:false> and <!bold>.
func decorationTag(d styled.Decoration, on bool) tagmark.TagFactory {
	return func(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
		state := on

		if arg, ok := args.PopOr(); ok {
			switch {
			case arg.IsFalse():
				state = !on
			case arg.IsTrue():
			default:
				return nil, fmt.Errorf("decoration %s: expected true or false, got %q", d, arg.Value())
			}
		}

		return tagmark.Styling(styled.Style{}.WithDecoration(d, styled.StateOf(state))), nil
	}
}
