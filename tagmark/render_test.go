package tagmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Drolfothesgnir/tagmark/styled"
)

func TestParse_SingleStyledText(t *testing.T) {
	p, _ := newTestParser(t)

	c, err := p.Parse("<red>hi</red>", nil)
	require.NoError(t, err)

	require.Equal(t, "hi", c.Content)
	require.Equal(t, testRed, *c.Style.Color)
	require.Empty(t, c.Children)
}

func TestParse_HoistsFirstPlainText(t *testing.T) {
	p, _ := newTestParser(t)

	c, err := p.Parse("a<bold>b</bold>c", nil)
	require.NoError(t, err)

	require.Equal(t, "a", c.Content)
	require.False(t, c.HasStyling())
	require.Len(t, c.Children, 2)
	require.Equal(t, "b", c.Children[0].Content)
	require.Equal(t, styled.True, c.Children[0].Style.Decoration(styled.Bold))
	require.Equal(t, "c", c.Children[1].Content)
	require.Equal(t, "abc", styled.PlainText(c))
}

func TestParse_ModifyingTag(t *testing.T) {
	p, tags := newTestParser(t)

	c, err := p.Parse("<upper>ab<bold>c</bold></upper>", nil)
	require.NoError(t, err)

	require.Equal(t, []int{1, 1, 2}, tags.lastUpper.visits)
	require.Equal(t, 1, tags.lastUpper.postVisit)

	require.Equal(t, "AB", c.Content)
	require.Len(t, c.Children, 1)
	require.Equal(t, "C", c.Children[0].Content)
	require.Equal(t, styled.True, c.Children[0].Style.Decoration(styled.Bold))
}

func TestParse_Placeholders(t *testing.T) {
	p, _ := newTestParser(t)

	ph := Placeholders{}.
		AddComponent("name", styled.Text("Steve").WithColor(testRed)).
		AddString("red", "<bold>")

	c, err := p.Parse("hi <name>, <red>x", ph)
	require.NoError(t, err)
	require.Equal(t, "hi Steve, x", styled.PlainText(c))

	last := c.Children[len(c.Children)-1]
	require.Equal(t, "x", last.Content)
	require.Equal(t, testRed, *last.Style.Color)
}

func TestParse_HoverCycle(t *testing.T) {
	p, tags := newTestParser(t)

	c, err := p.Parse("<hov>x</hov>", nil)
	require.NoError(t, err)
	require.Equal(t, "x", c.Content)
	require.Same(t, testPayload, c.Style.Hover.Text)

	_, err = p.Parse("<hov><p></hov>", Placeholders{}.AddComponent("p", testPayload))
	require.ErrorIs(t, err, ErrHoverCycle)

	self := styled.Text("self")
	self.Style.Hover = &styled.HoverEvent{Action: styled.ShowText, Text: styled.Empty().Append(self)}
	require.NoError(t, tags.registry.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return SelfClosingInsert(self), nil
	}, "self"))

	_, err = p.Parse("<self>", nil)
	require.ErrorIs(t, err, ErrHoverCycle)
}

func TestParse_NestedMarkupThroughContext(t *testing.T) {
	p, tags := newTestParser(t)

	require.NoError(t, tags.registry.Register(func(args *ArgumentQueue, ctx *Context) (Tag, error) {
		arg, err := args.Pop("markup")
		if err != nil {
			return nil, err
		}
		c, err := ctx.Deserialize(arg.Value())
		if err != nil {
			return nil, err
		}
		return SelfClosingInsert(c), nil
	}, "nest"))

	c, err := p.Parse("<nest:'<red>x'>", nil)
	require.NoError(t, err)
	require.Equal(t, "x", styled.PlainText(c))

	c, err = p.Parse("<nest:'<name>'>", Placeholders{}.AddComponent("name", styled.Text("Steve")))
	require.NoError(t, err)
	require.Equal(t, "Steve", styled.PlainText(c))
}

func TestFlatten(t *testing.T) {
	bold := styled.Style{}.WithDecoration(styled.Bold, styled.True)

	t.Run("leaf is kept", func(t *testing.T) {
		c := styled.Text("x")
		require.Same(t, c, Flatten(c))
	})

	t.Run("styled wrapper passes style to single child", func(t *testing.T) {
		child := styled.Text("x").WithColor(testRed)
		wrapper := styled.Empty().WithStyle(bold.WithColor(styled.RGB(0x0000aa))).Append(child)

		got := Flatten(wrapper)
		require.Equal(t, "x", got.Content)
		require.Equal(t, testRed, *got.Style.Color)
		require.Equal(t, styled.True, got.Style.Decoration(styled.Bold))
	})

	t.Run("styled first child is not hoisted", func(t *testing.T) {
		c := styled.Empty().
			Append(styled.Text("a").WithStyle(bold)).
			Append(styled.Text("b"))

		got := Flatten(c)
		require.Equal(t, "", got.Content)
		require.Len(t, got.Children, 2)
	})

	t.Run("non-text wrapper is kept", func(t *testing.T) {
		c := styled.Keybind("key.jump").Append(styled.Text("x"))

		got := Flatten(c)
		require.Equal(t, styled.KindKeybind, got.Kind)
		require.Len(t, got.Children, 1)
	})

	t.Run("nested empty wrappers collapse", func(t *testing.T) {
		c := styled.Empty().Append(styled.Empty().Append(styled.Empty().Append(styled.Text("deep"))))

		got := Flatten(c)
		require.Equal(t, "deep", got.Content)
		require.Empty(t, got.Children)
	})
}

func TestVisibleLength(t *testing.T) {
	text := Node{Type: NodeText, Value: "héllo"}
	require.Equal(t, 5, VisibleLength(&text))

	ph := Node{Type: NodePlaceholder, Replacement: ComponentReplacement(styled.Text("ab").Append(styled.Text("c")))}
	require.Equal(t, 3, VisibleLength(&ph))

	tag := Node{Type: NodeTag, Tag: SelfClosingInsert(styled.Text("**"))}
	require.Equal(t, 2, VisibleLength(&tag))

	root := Node{Type: NodeRoot}
	require.Equal(t, 0, VisibleLength(&root))
}
