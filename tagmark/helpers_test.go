package tagmark

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Drolfothesgnir/tagmark/styled"
)

var (
	testRed     = styled.RGB(0xff5555)
	testPayload = styled.Text("P")
)

// upperTag upper-cases every text below it and records the visit depths.
type upperTag struct {
	visits    []int
	postVisit int
}

func (u *upperTag) Kind() Kind { return KindModifying }

func (u *upperTag) Visit(n *Node, depth int) {
	u.visits = append(u.visits, depth)
}

func (u *upperTag) PostVisit() {
	u.postVisit++
}

func (u *upperTag) Apply(c *styled.Component, depth int) *styled.Component {
	out := c.WithChildren(nil)
	if c.IsText() {
		out = out.WithContent(strings.ToUpper(c.Content))
	}
	return out
}

type testTags struct {
	registry  *Registry
	lastUpper *upperTag
}

func newTestTags(t *testing.T) *testTags {
	t.Helper()

	tt := &testTags{registry: NewRegistry()}
	r := tt.registry

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return Styling(styled.Style{}.WithColor(testRed)), nil
	}, "red"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return Styling(styled.Style{}.WithDecoration(styled.Bold, styled.True)), nil
	}, "bold", "b"))

	require.NoError(t, r.Register(func(args *ArgumentQueue, _ *Context) (Tag, error) {
		args.Rest()
		return Styling(styled.Style{Insertion: "tint"}), nil
	}, "tint"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return SelfClosingInsert(styled.Text("*")), nil
	}, "star"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return nil, errors.New("always fails")
	}, "fail"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return Styling(styled.Style{Hover: &styled.HoverEvent{Action: styled.ShowText, Text: testPayload}}), nil
	}, "hov"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		tt.lastUpper = &upperTag{}
		return tt.lastUpper, nil
	}, "upper"))

	require.NoError(t, r.Register(func(*ArgumentQueue, *Context) (Tag, error) {
		return ResetDirective(), nil
	}, "clear"))

	// nest parses its argument as markup and shows it on hover
	require.NoError(t, r.Register(func(args *ArgumentQueue, ctx *Context) (Tag, error) {
		arg, err := args.Pop("markup")
		if err != nil {
			return nil, err
		}

		c, err := ctx.Deserialize(arg.Value())
		if err != nil {
			return nil, fmt.Errorf("nested markup: %w", err)
		}
		return Styling(styled.Style{Hover: &styled.HoverEvent{Action: styled.ShowText, Text: c}}), nil
	}, "nest"))

	return tt
}

func newTestParser(t *testing.T, opts ...Option) (*Parser, *testTags) {
	t.Helper()
	tt := newTestTags(t)
	p, err := NewParser(tt.registry, opts...)
	require.NoError(t, err)
	return p, tt
}

func newWarnings(t *testing.T) *Warnings {
	t.Helper()
	w, err := NewWarnings(WarnOverflowNoCap, 0)
	require.NoError(t, err)
	return &w
}

// childTypes lists the types of the children of the node at idx.
func childTypes(tree *Tree, idx int) []NodeType {
	var out []NodeType
	for _, c := range tree.Children(idx) {
		out = append(out, tree.Node(c).Type)
	}
	return out
}

func requireParseError(t *testing.T, err error, issue Issue) *ParseError {
	t.Helper()
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T (%v)", err, err)
	require.Equal(t, issue, pe.Issue)
	return pe
}
