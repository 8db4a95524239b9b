package tags

import (
	"fmt"
	"strings"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

// clickTag handles <click:action:value>.
func clickTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	name, err := args.Pop("click action")
	if err != nil {
		return nil, err
	}

	action, ok := styled.ClickActionByName(name.Lower())
	if !ok {
		return nil, fmt.Errorf("unknown click action %q", name.Value())
	}

	value, err := args.Pop("click value")
	if err != nil {
		return nil, err
	}

	return tagmark.Styling(styled.Style{Click: &styled.ClickEvent{Action: action, Value: value.Value()}}), nil
}

// hoverTag handles <hover:show_text:'markup'>, <hover:show_item:id[:count...]> and <hover:show_entity:type:uuid[:name]>.
func hoverTag(args *tagmark.ArgumentQueue, ctx *tagmark.Context) (tagmark.Tag, error) {
	name, err := args.Pop("hover action")
	if err != nil {
		return nil, err
	}

	var ev styled.HoverEvent

	switch styled.HoverAction(name.Lower()) {
	case styled.ShowText:
		markup, err := args.Pop("show_text message")
		if err != nil {
			return nil, err
		}
		text, err := ctx.Deserialize(markup.Value())
		if err != nil {
			return nil, fmt.Errorf("show_text message: %w", err)
		}
		ev = styled.HoverEvent{Action: styled.ShowText, Text: text}

	case styled.ShowItem, styled.ShowEntity:
		if !args.HasNext() {
			return nil, fmt.Errorf("%s needs at least one argument", name.Lower())
		}
		ev = styled.HoverEvent{Action: styled.HoverAction(name.Lower()), Raw: values(args.Rest())}

	default:
		return nil, fmt.Errorf("unknown hover action %q", name.Value())
	}

	return tagmark.Styling(styled.Style{Hover: &ev}), nil
}

// insertionTag handles <insert:text>, the text inserted on shift-click.
func insertionTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	text, err := args.Pop("insertion text")
	if err != nil {
		return nil, err
	}
	return tagmark.Styling(styled.Style{Insertion: text.Value()}), nil
}

// fontTag handles <font:key> and <font:namespace:key>.
func fontTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	if !args.HasNext() {
		return nil, fmt.Errorf("font needs a key")
	}
	return tagmark.Styling(styled.Style{Font: strings.Join(values(args.Rest()), ":")}), nil
}

func values(args []tagmark.Argument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Value()
	}
	return out
}
