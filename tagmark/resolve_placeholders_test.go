package tagmark

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Drolfothesgnir/tagmark/styled"
)

func noTags(string) bool { return false }

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		placeholders Placeholders
		isTagName    func(string) bool
		passes       int
		want         string
	}{
		{
			name:         "simple",
			input:        "hi <name>!",
			placeholders: Placeholders{}.AddString("name", "Steve"),
			isTagName:    noTags,
			passes:       16,
			want:         "hi Steve!",
		},
		{
			name:         "nested expansion",
			input:        "<a>",
			placeholders: Placeholders{}.AddString("a", "[<b>]").AddString("b", "x"),
			isTagName:    noTags,
			passes:       16,
			want:         "[x]",
		},
		{
			name:         "mutual recursion stops at the bound",
			input:        "<a>",
			placeholders: Placeholders{}.AddString("a", "<b>").AddString("b", "<a>"),
			isTagName:    noTags,
			passes:       16,
			want:         "<a>",
		},
		{
			name:         "odd bound",
			input:        "<a>",
			placeholders: Placeholders{}.AddString("a", "<b>").AddString("b", "<a>"),
			isTagName:    noTags,
			passes:       15,
			want:         "<b>",
		},
		{
			name:         "tag names are not substituted",
			input:        "<red>x",
			placeholders: Placeholders{}.AddString("red", "nope"),
			isTagName:    func(n string) bool { return n == "red" },
			passes:       16,
			want:         "<red>x",
		},
		{
			name:         "escaped tag is kept",
			input:        `\<a>`,
			placeholders: Placeholders{}.AddString("a", "x"),
			isTagName:    noTags,
			passes:       16,
			want:         `\<a>`,
		},
		{
			name:         "component placeholders are kept",
			input:        "<c> <A>",
			placeholders: Placeholders{}.AddComponent("c", styled.Text("c")).AddString("a", "x"),
			isTagName:    noTags,
			passes:       16,
			want:         "<c> x",
		},
		{
			name:         "closing tags are kept",
			input:        "</a>",
			placeholders: Placeholders{}.AddString("a", "x"),
			isTagName:    noTags,
			passes:       16,
			want:         "</a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolvePlaceholders(tt.input, tt.isTagName, tt.placeholders, tt.passes))
		})
	}
}

func TestResolvePlaceholders_ChainIsCutOff(t *testing.T) {
	ph := Placeholders{}
	for i := 0; i < 20; i++ {
		ph.AddString(fmt.Sprintf("p%d", i), fmt.Sprintf("<p%d>", i+1))
	}

	require.Equal(t, "<p16>", ResolvePlaceholders("<p0>", noTags, ph, DefaultMaxPlaceholderPasses))
}

func TestParser_ResolvePlaceholdersUsesLimits(t *testing.T) {
	p, _ := newTestParser(t, WithLimits(Limits{MaxPlaceholderPasses: 1}))

	ph := Placeholders{}.AddString("a", "<b>").AddString("b", "x")
	require.Equal(t, "<b>", p.ResolvePlaceholders("<a>", ph))
}

func TestResolveStringPlaceholders(t *testing.T) {
	ph := Placeholders{}.AddString("a", "<b>").AddString("b", "x")

	require.Equal(t, "<b> <red> <a:x> </a>", ResolveStringPlaceholders("<a> <red> <a:x> </a>", ph))
	require.Equal(t, "plain", ResolveStringPlaceholders("plain", nil))
}
