package styled

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit RGB text color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB creates a Color from the packed 0xRRGGBB value.
func RGB(v uint32) Color {
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// namedColors is the fixed palette addressable by name, e.g. <red> or <color:dark_aqua>.
var namedColors = map[string]Color{
	"black":        RGB(0x000000),
	"dark_blue":    RGB(0x0000aa),
	"dark_green":   RGB(0x00aa00),
	"dark_aqua":    RGB(0x00aaaa),
	"dark_red":     RGB(0xaa0000),
	"dark_purple":  RGB(0xaa00aa),
	"gold":         RGB(0xffaa00),
	"gray":         RGB(0xaaaaaa),
	"dark_gray":    RGB(0x555555),
	"blue":         RGB(0x5555ff),
	"green":        RGB(0x55ff55),
	"aqua":         RGB(0x55ffff),
	"red":          RGB(0xff5555),
	"light_purple": RGB(0xff55ff),
	"yellow":       RGB(0xffff55),
	"white":        RGB(0xffffff),
}

// alias spellings accepted on input only
var colorAliases = map[string]string{
	"grey":      "gray",
	"dark_grey": "dark_gray",
}

// Named looks up a palette color by its case-insensitive name.
func Named(name string) (Color, bool) {
	name = strings.ToLower(name)
	if alias, ok := colorAliases[name]; ok {
		name = alias
	}

	c, ok := namedColors[name]
	return c, ok
}

// NameOf returns the palette name of the color, if it has one.
func NameOf(c Color) (string, bool) {
	for name, v := range namedColors {
		if v == c {
			return name, true
		}
	}

	return "", false
}

// ParseHex parses a "#rrggbb" color string.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RRGGBB", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return Color{r, g, b}, nil
}

// ParseColor accepts either a palette name or a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}

	if c, ok := Named(s); ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("unknown color %q: use a named color or #RRGGBB", s)
}

// IsColorName reports whether s is a palette name or a well-formed hex color.
func IsColorName(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// Hex returns the "#rrggbb" representation of the color.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Lerp linearly interpolates between a and b in RGB space. t is clamped to [0, 1].
func Lerp(t float64, a, b Color) Color {
	t = min(1, max(0, t))

	r, g, bl := a.colorful().BlendRgb(b.colorful(), t).RGB255()
	return Color{r, g, bl}
}
