package tagmark

import "github.com/Drolfothesgnir/tagmark/styled"

// Kind is the discriminant of the [Tag] variants.
type Kind int

const (
	// KindInserting tags contribute a fixed component, e.g. colors and decorations.
	KindInserting Kind = iota

	// KindModifying tags rewrite the components produced by their children, e.g. gradients.
	KindModifying

	// KindDirective tags instruct the tree builder itself, e.g. reset.
	KindDirective
)

// Tag is the behavior bound to a tag in the markup. Every Tag implements exactly one of
// [Inserting], [Modifying] and [Directive], as told by Kind.
type Tag interface {
	Kind() Kind
}

// Inserting tags contribute the component returned by Value.
type Inserting interface {
	Tag

	// Value is the contributed component. The children of the tag are appended to it.
	Value() *styled.Component

	// AllowsChildren is false for self-closing tags, which never open a scope.
	AllowsChildren() bool
}

// Modifying tags see their whole subtree before producing the output.
//
// The application pass calls Visit for every descendant node in document order,
// then PostVisit exactly once, then Apply for the tag's own component and
// every component below it. A Modifying tag is stateful, so every use needs a fresh instance.
type Modifying interface {
	Tag

	// Visit is called with every descendant node and its depth below the tag, starting at 1.
	Visit(n *Node, depth int)

	// PostVisit is called once after the last Visit.
	PostVisit()

	// Apply returns the replacement of c, without c's children; depth is 0 for the tag's own component.
	// The processed children of c are appended to the result afterwards.
	Apply(c *styled.Component, depth int) *styled.Component
}

// DirectiveType names the actions of the [Directive] tags.
type DirectiveType int

const (
	// DirectiveReset closes every open tag.
	DirectiveReset DirectiveType = iota
)

// Directive tags act on the tree builder and leave nothing in the tree.
type Directive interface {
	Tag

	Directive() DirectiveType
}

type insertingTag struct {
	value          *styled.Component
	allowsChildren bool
}

func (t insertingTag) Kind() Kind               { return KindInserting }
func (t insertingTag) Value() *styled.Component { return t.value }
func (t insertingTag) AllowsChildren() bool     { return t.allowsChildren }

// Insert returns the Inserting Tag contributing c, with children.
func Insert(c *styled.Component) Tag {
	return insertingTag{value: c, allowsChildren: true}
}

// SelfClosingInsert returns the Inserting Tag contributing c, which never has children.
func SelfClosingInsert(c *styled.Component) Tag {
	return insertingTag{value: c}
}

// Styling returns the Inserting Tag applying s to its children.
func Styling(s styled.Style) Tag {
	return Insert(styled.Empty().WithStyle(s))
}

type directiveTag DirectiveType

func (t directiveTag) Kind() Kind               { return KindDirective }
func (t directiveTag) Directive() DirectiveType { return DirectiveType(t) }

// ResetDirective returns the reset Directive.
func ResetDirective() Tag {
	return directiveTag(DirectiveReset)
}

// IsReset reports whether name is a name of the reset directive.
func IsReset(name string) bool {
	return len(name) <= len(Reset) && (equalFold(name, Reset) || equalFold(name, ResetShort))
}
