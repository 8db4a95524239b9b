package tags

import (
	"fmt"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

// translatableTag handles <lang:key:arg...>. Every argument is parsed as markup.
func translatableTag(args *tagmark.ArgumentQueue, ctx *tagmark.Context) (tagmark.Tag, error) {
	key, err := args.Pop("translation key")
	if err != nil {
		return nil, err
	}

	rest := args.Rest()
	with := make([]*styled.Component, 0, len(rest))
	for i, a := range rest {
		c, err := ctx.Deserialize(a.Value())
		if err != nil {
			return nil, fmt.Errorf("translation argument %d: %w", i, err)
		}
		with = append(with, c)
	}

	return tagmark.SelfClosingInsert(styled.Translatable(key.Value(), with...)), nil
}

func keybindTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	key, err := args.Pop("keybind")
	if err != nil {
		return nil, err
	}
	return tagmark.SelfClosingInsert(styled.Keybind(key.Value())), nil
}

func selectorTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	pattern, err := args.Pop("selector pattern")
	if err != nil {
		return nil, err
	}
	return tagmark.SelfClosingInsert(styled.Selector(pattern.Value())), nil
}

func scoreTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	name, err := args.Pop("score holder")
	if err != nil {
		return nil, err
	}
	objective, err := args.Pop("score objective")
	if err != nil {
		return nil, err
	}
	return tagmark.SelfClosingInsert(styled.Score(name.Value(), objective.Value())), nil
}

func newlineTag(*tagmark.ArgumentQueue, *tagmark.Context) (tagmark.Tag, error) {
	return tagmark.SelfClosingInsert(styled.Text("\n")), nil
}
