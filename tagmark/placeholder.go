package tagmark

import (
	"strings"

	"github.com/Drolfothesgnir/tagmark/styled"
)

// Replacement is the value of a placeholder: either a markup string or a ready component.
//
// String replacements are expanded into the input before tokenizing and may contain tags.
// Component replacements are inserted as they are.
type Replacement struct {
	text      string
	component *styled.Component
}

// StringReplacement returns the Replacement substituting the markup s.
func StringReplacement(s string) Replacement {
	return Replacement{text: s}
}

// ComponentReplacement returns the Replacement inserting c.
func ComponentReplacement(c *styled.Component) Replacement {
	return Replacement{component: c}
}

func (r Replacement) IsString() bool {
	return r.component == nil
}

func (r Replacement) Text() string {
	return r.text
}

func (r Replacement) Component() *styled.Component {
	return r.component
}

// PlainText is the visible text of the Replacement.
func (r Replacement) PlainText() string {
	if r.IsString() {
		return r.text
	}
	return styled.PlainText(r.component)
}

// PlaceholderResolver maps placeholder names to Replacements.
type PlaceholderResolver interface {
	ResolvePlaceholder(name string) (Replacement, bool)
}

// Placeholders is the PlaceholderResolver backed by a map. Keys are lowercase.
type Placeholders map[string]Replacement

// NoPlaceholders resolves nothing.
var NoPlaceholders PlaceholderResolver = Placeholders(nil)

func (p Placeholders) ResolvePlaceholder(name string) (Replacement, bool) {
	r, ok := p[strings.ToLower(name)]
	return r, ok
}

// AddString adds the string placeholder.
func (p Placeholders) AddString(name, markup string) Placeholders {
	p[strings.ToLower(name)] = StringReplacement(markup)
	return p
}

// AddComponent adds the component placeholder.
func (p Placeholders) AddComponent(name string, c *styled.Component) Placeholders {
	p[strings.ToLower(name)] = ComponentReplacement(c)
	return p
}

// PlaceholderResolvers combines several PlaceholderResolvers, the first match wins.
type PlaceholderResolvers []PlaceholderResolver

func (rs PlaceholderResolvers) ResolvePlaceholder(name string) (Replacement, bool) {
	for _, r := range rs {
		if v, ok := r.ResolvePlaceholder(name); ok {
			return v, true
		}
	}
	return Replacement{}, false
}
