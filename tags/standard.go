// Package tags provides the standard tag set: colors, decorations, events, insertions and the
// gradient and rainbow color transitions.
package tags

import (
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

// Standard returns a new Registry with every standard tag registered.
func Standard() *tagmark.Registry {
	r := tagmark.NewRegistry()
	RegisterStandard(r)
	return r
}

// RegisterStandard adds the standard tags to r. It panics if r already holds one of their names.
func RegisterStandard(r *tagmark.Registry) {
	registerColors(r)
	registerDecorations(r)

	r.MustRegister(clickTag, "click")
	r.MustRegister(hoverTag, "hover")
	r.MustRegister(insertionTag, "insert", "insertion")
	r.MustRegister(fontTag, "font")
	r.MustRegister(translatableTag, "lang", "tr", "translate")
	r.MustRegister(keybindTag, "key", "keybind")
	r.MustRegister(selectorTag, "selector", "sel")
	r.MustRegister(scoreTag, "score")
	r.MustRegister(newlineTag, "newline", "br")
	r.MustRegister(resetTag, tagmark.Reset, tagmark.ResetShort)
	r.MustRegister(gradientTag, "gradient")
	r.MustRegister(rainbowTag, "rainbow")
}

func resetTag(*tagmark.ArgumentQueue, *tagmark.Context) (tagmark.Tag, error) {
	return tagmark.ResetDirective(), nil
}
