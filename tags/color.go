package tags

import (
	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

func registerColors(r *tagmark.Registry) {
	r.MustRegister(colorTag, "color", "colour", "c")

	// <red>, <dark_gray>, <#ff00aa>
	r.RegisterMatcher(styled.IsColorName, func(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
		c, err := styled.ParseColor(args.Tag())
		if err != nil {
			return nil, err
		}
		return tagmark.Styling(styled.Style{}.WithColor(c)), nil
	})
}

// colorTag handles <color:name>, <color:#rrggbb>.
func colorTag(args *tagmark.ArgumentQueue, _ *tagmark.Context) (tagmark.Tag, error) {
	arg, err := args.Pop("color")
	if err != nil {
		return nil, err
	}

	c, err := styled.ParseColor(arg.Value())
	if err != nil {
		return nil, err
	}

	return tagmark.Styling(styled.Style{}.WithColor(c)), nil
}
