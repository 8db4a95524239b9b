// Package render prints styled components on a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

var profiles = map[string]termenv.Profile{
	"ascii":     termenv.Ascii,
	"ansi":      termenv.ANSI,
	"ansi256":   termenv.ANSI256,
	"truecolor": termenv.TrueColor,
}

// ProfileByName maps a COLOR_PROFILE value to a termenv profile.
// An empty name reports false so the detected profile is kept.
func ProfileByName(name string) (termenv.Profile, bool, error) {
	if name == "" {
		return termenv.Ascii, false, nil
	}

	p, ok := profiles[strings.ToLower(name)]
	if !ok {
		return termenv.Ascii, false, fmt.Errorf("unknown color profile %q: expected ascii, ansi, ansi256 or truecolor", name)
	}

	return p, true, nil
}

// Renderer turns components into ANSI escaped strings for the terminal behind w.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer creates a Renderer with the color profile detected from w.
func NewRenderer(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)

	log.Debug().
		Str("colorProfile", profileName(lg.ColorProfile())).
		Msg("terminal renderer created")

	return &Renderer{lg: lg}
}

// SetProfile overrides the detected color profile.
func (r *Renderer) SetProfile(p termenv.Profile) {
	r.lg.SetColorProfile(p)
}

// Profile returns the color profile in use.
func (r *Renderer) Profile() termenv.Profile {
	return r.lg.ColorProfile()
}

// Render returns c as a string with every text run wrapped in its escape sequences.
// Styles are inherited from parents the same way the component model does.
func (r *Renderer) Render(c *styled.Component) string {
	var sb strings.Builder
	r.render(&sb, c, styled.Style{})
	return sb.String()
}

func (r *Renderer) render(sb *strings.Builder, c *styled.Component, parent styled.Style) {
	if c == nil {
		return
	}

	st := c.Style.Merge(parent)

	var content string
	if c.IsText() {
		content = c.Content
	} else {
		content = describe(c)
	}

	r.writeRun(sb, content, st)

	for _, child := range c.Children {
		r.render(sb, child, st)
	}
}

// writeRun renders line by line, lipgloss pads multi-line blocks to equal width.
func (r *Renderer) writeRun(sb *strings.Builder, content string, st styled.Style) {
	if content == "" {
		return
	}

	ls := r.style(st)
	link := ""
	if st.Click != nil && st.Click.Action == styled.OpenURL && r.Profile() != termenv.Ascii {
		link = st.Click.Value
	}

	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}

		if line == "" {
			continue
		}

		out := ls.Render(line)
		if link != "" {
			out = termenv.Hyperlink(link, out)
		}
		sb.WriteString(out)
	}
}

func (r *Renderer) style(st styled.Style) lipgloss.Style {
	ls := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if st.Color != nil {
		ls = ls.Foreground(lipgloss.Color(st.Color.Hex()))
	}

	if st.Decoration(styled.Bold) == styled.True {
		ls = ls.Bold(true)
	}

	if st.Decoration(styled.Italic) == styled.True {
		ls = ls.Italic(true)
	}

	if st.Decoration(styled.Underlined) == styled.True {
		ls = ls.Underline(true)
	}

	if st.Decoration(styled.Strikethrough) == styled.True {
		ls = ls.Strikethrough(true)
	}

	if st.Decoration(styled.Obfuscated) == styled.True {
		ls = ls.Blink(true)
	}

	return ls
}

// describe gives the textual stand-in of a component the terminal cannot resolve.
func describe(c *styled.Component) string {
	switch c.Kind {
	case styled.KindKeybind:
		return "[" + c.Content + "]"

	case styled.KindSelector:
		return c.Content

	case styled.KindScore:
		return fmt.Sprintf("{%s:%s}", c.Content, c.Objective)

	case styled.KindTranslatable:
		if len(c.Args) == 0 {
			return c.Content
		}

		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = styled.PlainText(a)
		}
		return c.Content + "(" + strings.Join(args, ", ") + ")"
	}

	return ""
}

func profileName(p termenv.Profile) string {
	for name, v := range profiles {
		if v == p {
			return name
		}
	}
	return "unknown"
}
