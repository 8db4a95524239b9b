package styled

import "strings"

// Kind discriminates the Component variants.
type Kind int

const (
	KindText Kind = iota
	KindTranslatable
	KindKeybind
	KindScore
	KindSelector
)

var kindNames = map[Kind]string{
	KindText:         "text",
	KindTranslatable: "translatable",
	KindKeybind:      "keybind",
	KindScore:        "score",
	KindSelector:     "selector",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Component is an immutable node of styled text.
// The With* and Append methods return modified copies and never touch the receiver.
//
// Content depends on Kind:
//   - KindText: the literal text.
//   - KindTranslatable: the translation key, Args holds the arguments.
//   - KindKeybind: the keybind identifier.
//   - KindScore: the score holder name, Objective holds the objective.
//   - KindSelector: the selector pattern.
type Component struct {
	Kind      Kind         `json:"kind"`
	Content   string       `json:"content"`
	Objective string       `json:"objective,omitempty"`
	Args      []*Component `json:"args,omitempty"`
	Style     Style        `json:"style"`
	Children  []*Component `json:"children,omitempty"`
}

// Text creates a plain text component.
func Text(content string) *Component {
	return &Component{Kind: KindText, Content: content}
}

// Empty creates an empty text component.
func Empty() *Component {
	return Text("")
}

// Translatable creates a translatable component.
func Translatable(key string, args ...*Component) *Component {
	return &Component{Kind: KindTranslatable, Content: key, Args: args}
}

// Keybind creates a keybind component.
func Keybind(key string) *Component {
	return &Component{Kind: KindKeybind, Content: key}
}

// Score creates a score component.
func Score(name, objective string) *Component {
	return &Component{Kind: KindScore, Content: name, Objective: objective}
}

// Selector creates a selector component.
func Selector(pattern string) *Component {
	return &Component{Kind: KindSelector, Content: pattern}
}

// IsText reports whether c is a text component.
func (c *Component) IsText() bool {
	return c.Kind == KindText
}

// HasStyling reports whether any style attribute is set.
func (c *Component) HasStyling() bool {
	return !c.Style.IsEmpty()
}

func (c *Component) clone() *Component {
	cp := *c
	return &cp
}

// WithStyle returns a copy with the style replaced.
func (c *Component) WithStyle(s Style) *Component {
	cp := c.clone()
	cp.Style = s
	return cp
}

// WithColor returns a copy with the color set.
func (c *Component) WithColor(col Color) *Component {
	return c.WithStyle(c.Style.WithColor(col))
}

// WithContent returns a copy with the content replaced.
func (c *Component) WithContent(content string) *Component {
	cp := c.clone()
	cp.Content = content
	return cp
}

// WithChildren returns a copy with the children replaced.
func (c *Component) WithChildren(children []*Component) *Component {
	cp := c.clone()
	cp.Children = children
	return cp
}

// Append returns a copy with child added after the existing children.
func (c *Component) Append(child *Component) *Component {
	children := make([]*Component, 0, len(c.Children)+1)
	children = append(children, c.Children...)
	children = append(children, child)

	return c.WithChildren(children)
}

// PlainText returns the concatenated content of every text component in the tree,
// in document order. Other kinds contribute nothing.
func PlainText(c *Component) string {
	var sb strings.Builder
	appendPlain(&sb, c)
	return sb.String()
}

func appendPlain(sb *strings.Builder, c *Component) {
	if c == nil {
		return
	}

	if c.Kind == KindText {
		sb.WriteString(c.Content)
	}

	for _, child := range c.Children {
		appendPlain(sb, child)
	}
}

// Contains reports whether target is reachable from root by identity, following
// children, translatable arguments and show_text hover payloads.
func Contains(root, target *Component) bool {
	if root == nil || target == nil {
		return false
	}

	stack := []*Component{root}
	seen := make(map[*Component]bool)

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c == target {
			return true
		}

		if seen[c] {
			continue
		}
		seen[c] = true

		stack = append(stack, c.Children...)
		stack = append(stack, c.Args...)

		if c.Style.Hover != nil && c.Style.Hover.Text != nil {
			stack = append(stack, c.Style.Hover.Text)
		}
	}

	return false
}
