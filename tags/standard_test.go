package tags

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Drolfothesgnir/tagmark/styled"
	"github.com/Drolfothesgnir/tagmark/tagmark"
)

func newParser(t *testing.T, opts ...tagmark.Option) *tagmark.Parser {
	t.Helper()
	p, err := tagmark.NewParser(Standard(), opts...)
	require.NoError(t, err)
	return p
}

func parse(t *testing.T, p *tagmark.Parser, in string) *styled.Component {
	t.Helper()
	c, err := p.Parse(in, nil)
	require.NoError(t, err)
	return c
}

func TestStandard_Names(t *testing.T) {
	r := Standard()

	for _, n := range []string{
		"color", "colour", "c", "red", "dark_gray", "grey", "#ff00aa", "#FF00AA",
		"bold", "b", "!bold", "em", "!obf", "click", "hover", "insert", "font",
		"lang", "key", "sel", "score", "br", "reset", "r", "gradient", "rainbow",
	} {
		require.True(t, r.Has(n), n)
	}

	require.False(t, r.Has("#ff00a"))
	require.False(t, r.Has("nope"))
}

func TestColors(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		input string
		color styled.Color
	}{
		{"<red>x", styled.RGB(0xff5555)},
		{"<DARK_BLUE>x", styled.RGB(0x0000aa)},
		{"<#00ff00>x", styled.RGB(0x00ff00)},
		{"<color:gold>x", styled.RGB(0xffaa00)},
		{"<colour:grey>x", styled.RGB(0xaaaaaa)},
		{"<c:#FFAA00>x", styled.RGB(0xffaa00)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := parse(t, p, tt.input)
			require.Equal(t, "x", c.Content)
			require.NotNil(t, c.Style.Color)
			require.Equal(t, tt.color, *c.Style.Color)
		})
	}
}

func TestColors_InvalidIsText(t *testing.T) {
	p := newParser(t)

	c := parse(t, p, "<colour:nope>x")
	require.Equal(t, "<colour:nope>x", styled.PlainText(c))
	require.Nil(t, c.Style.Color)
}

func TestDecorations(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		input string
		deco  styled.Decoration
		state styled.State
	}{
		{"<bold>x", styled.Bold, styled.True},
		{"<b:true>x", styled.Bold, styled.True},
		{"<b:false>x", styled.Bold, styled.False},
		{"<!italic>x", styled.Italic, styled.False},
		{"<em:off>x", styled.Italic, styled.False},
		{"<u>x", styled.Underlined, styled.True},
		{"<st>x", styled.Strikethrough, styled.True},
		{"<obf>x", styled.Obfuscated, styled.True},
		{"<!obf:false>x", styled.Obfuscated, styled.True},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := parse(t, p, tt.input)
			require.Equal(t, "x", c.Content)
			require.Equal(t, tt.state, c.Style.Decoration(tt.deco))
		})
	}

	c := parse(t, p, "<bold:maybe>x")
	require.Equal(t, "<bold:maybe>x", styled.PlainText(c))
}

func TestClick(t *testing.T) {
	p := newParser(t)

	c := parse(t, p, "<click:open_url:https://example.com/a?b=c>go</click>")
	require.Equal(t, "go", c.Content)
	require.Equal(t, &styled.ClickEvent{Action: styled.OpenURL, Value: "https://example.com/a?b=c"}, c.Style.Click)

	c = parse(t, p, "<click:run_command:'/say hi'>go")
	require.Equal(t, &styled.ClickEvent{Action: styled.RunCommand, Value: "/say hi"}, c.Style.Click)

	c = parse(t, p, "<click:explode:x>go")
	require.Equal(t, "<click:explode:x>go", styled.PlainText(c))
}

func TestHover(t *testing.T) {
	p := newParser(t)

	c := parse(t, p, "<hover:show_text:'<red>tip'>x</hover>")
	require.Equal(t, "x", c.Content)
	require.Equal(t, styled.ShowText, c.Style.Hover.Action)
	require.Equal(t, "tip", styled.PlainText(c.Style.Hover.Text))
	require.Equal(t, styled.RGB(0xff5555), *c.Style.Hover.Text.Style.Color)

	c = parse(t, p, "<hover:show_item:stone:3>x")
	require.Equal(t, &styled.HoverEvent{Action: styled.ShowItem, Raw: []string{"stone", "3"}}, c.Style.Hover)

	c = parse(t, p, "<hover:show_entity>x")
	require.Equal(t, "<hover:show_entity>x", styled.PlainText(c))
}

func TestNestedMarkupStrict(t *testing.T) {
	p := newParser(t, tagmark.WithStrict(true))

	for _, in := range []string{
		"<hover:show_text:'<red>oops'>hi</hover>",
		"<lang:block.stone:'<red>a'>",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := p.Parse(in, nil)

			var pe *tagmark.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tagmark.IssueUnclosedTag, pe.Issue)
		})
	}

	c := parse(t, p, "<hover:show_text:'<red>tip</red>'>x</hover>")
	require.Equal(t, "tip", styled.PlainText(c.Style.Hover.Text))
}

func TestInsertionAndFont(t *testing.T) {
	p := newParser(t)

	c := parse(t, p, "<insert:hello>x")
	require.Equal(t, "hello", c.Style.Insertion)

	c = parse(t, p, "<font:minecraft:uniform>x")
	require.Equal(t, "minecraft:uniform", c.Style.Font)
}

func TestInsertingTags(t *testing.T) {
	p := newParser(t)

	c := parse(t, p, "<lang:block.stone:'<red>a'>")
	require.Equal(t, styled.KindTranslatable, c.Kind)
	require.Equal(t, "block.stone", c.Content)
	require.Len(t, c.Args, 1)
	require.Equal(t, "a", styled.PlainText(c.Args[0]))

	c = parse(t, p, "<key:key.jump>")
	require.Equal(t, styled.Keybind("key.jump"), c)

	c = parse(t, p, "<sel:@p>")
	require.Equal(t, styled.Selector("@p"), c)

	c = parse(t, p, "<score:Steve:kills>")
	require.Equal(t, styled.Score("Steve", "kills"), c)

	c = parse(t, p, "a<br>b")
	require.Equal(t, "a\nb", styled.PlainText(c))

	c = parse(t, p, "<score:Steve>")
	require.Equal(t, "<score:Steve>", styled.PlainText(c))
}

func TestReset(t *testing.T) {
	c := parse(t, newParser(t), "<red>a<reset>b")
	require.Len(t, c.Children, 2)
	require.NotNil(t, c.Children[0].Style.Color)
	require.Nil(t, c.Children[1].Style.Color)

	_, err := newParser(t, tagmark.WithStrict(true)).Parse("<red>a<reset>b", nil)
	var pe *tagmark.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, tagmark.IssueResetInStrictMode, pe.Issue)
}

func TestEscapeAndStrip(t *testing.T) {
	p := newParser(t)

	require.Equal(t, `\<red>x\</red> <nope>`, p.Escape("<red>x</red> <nope>"))
	require.Equal(t, "hi x <nope>", p.Strip("<#ff0000>hi</#ff0000> <bold>x <nope>"))
}
