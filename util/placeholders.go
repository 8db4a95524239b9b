package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/Drolfothesgnir/tagmark/tagmark"
	"gopkg.in/yaml.v3"
)

// placeholderFile is the layout of a placeholders YAML file:
//
//	strings:
//	  player: "<gold>Steve</gold>"
//	components:
//	  badge: "<bold>[admin]</bold>"
//
// Strings are substituted into the markup before parsing.
// Components are parsed once here and inserted as they are.
type placeholderFile struct {
	Strings    map[string]string `yaml:"strings"`
	Components map[string]string `yaml:"components"`
}

// LoadPlaceholderFile reads the placeholders YAML file at path.
// An empty path gives empty Placeholders.
func LoadPlaceholderFile(path string, p *tagmark.Parser) (tagmark.Placeholders, error) {
	if path == "" {
		return tagmark.Placeholders{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read placeholders file: %w", err)
	}

	return ParsePlaceholders(data, p)
}

// ParsePlaceholders decodes the placeholders YAML document, parsing component markup with p.
func ParsePlaceholders(data []byte, p *tagmark.Parser) (tagmark.Placeholders, error) {
	var file placeholderFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid placeholders file: %w", err)
	}

	out := make(tagmark.Placeholders, len(file.Strings)+len(file.Components))

	for name, markup := range file.Strings {
		if !tagmark.ValidTagName(strings.ToLower(name)) {
			return nil, fmt.Errorf("invalid placeholder name %q", name)
		}
		out.AddString(name, markup)
	}

	for name, markup := range file.Components {
		if !tagmark.ValidTagName(strings.ToLower(name)) {
			return nil, fmt.Errorf("invalid placeholder name %q", name)
		}

		if _, ok := out.ResolvePlaceholder(name); ok {
			return nil, fmt.Errorf("placeholder %q is defined twice", name)
		}

		c, err := p.Parse(markup, tagmark.NoPlaceholders)
		if err != nil {
			return nil, fmt.Errorf("placeholder %q: %w", name, err)
		}
		out.AddComponent(name, c)
	}

	return out, nil
}
