package tagmark

// TokenType defines the kind of a Token.
type TokenType int

const (
	// TokenText means the Token spans plain text.
	TokenText TokenType = iota

	// TokenOpenTag means the Token spans an opening tag, e.g. "<red>" or "<click:run_command:/help>".
	TokenOpenTag

	// TokenCloseTag means the Token spans a closing tag, e.g. "</red>".
	TokenCloseTag

	// TokenTagValue means the Token spans one colon-separated part inside a tag.
	TokenTagValue
)

var tokenTypeNames = [...]string{
	TokenText:     "Text",
	TokenOpenTag:  "OpenTag",
	TokenCloseTag: "CloseTag",
	TokenTagValue: "TagValue",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "Unknown"
	}
	return tokenTypeNames[t]
}

// Span defines bounds of the window view of a string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int `json:"start"`

	// End defines the exclusive end of the view.
	End int `json:"end"`
}

// NewSpan creates new Span from the startIdx and the width.
// End index is calculated as startIdx + width.
func NewSpan(startIdx int, width int) Span {
	return Span{startIdx, startIdx + width}
}

// Len is the number of bytes in the Span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Of returns the part of input covered by the Span.
func (s Span) Of(input string) string {
	return input[s.Start:s.End]
}

// Token is the result of the lexing of a part of the input string.
type Token struct {
	// Type defines the kind of the Token.
	Type TokenType

	// Span defines the bytes of the input covered by the Token, including the angle brackets for tags.
	Span Span

	// Values are the TokenTagValue children of TokenOpenTag and TokenCloseTag tokens, in order.
	// The first one is the tag's name. Other tokens have no Values.
	Values []Token
}

// Raw returns the source text of the Token.
func (t Token) Raw(input string) string {
	return t.Span.Of(input)
}
