package tagmark

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrMalformedToken is returned when a tag token carries no values. The lexer never produces such tokens.
var ErrMalformedToken = errors.New("malformed tag token")

// ErrHoverCycle is returned by [Render] when a component would end up inside its own hover payload.
var ErrHoverCycle = errors.New("component is its own hover payload")

// ParseError is the fatal error of the strict mode, or of an input exceeding the [Limits].
type ParseError struct {
	// Issue is the kind of the problem.
	Issue Issue

	// Message is the human-readable story of what went wrong.
	Message string

	// Input is the message which was being parsed, after the placeholder expansion.
	Input string

	// Spans are the offending byte ranges of the Input, in ascending order.
	Spans []Span

	// Tags are the names of the tags involved.
	Tags []string
}

func newParseError(issue Issue, input, message string, tags []string, spans ...Span) *ParseError {
	return &ParseError{
		Issue:   issue,
		Message: message,
		Input:   input,
		Spans:   spans,
		Tags:    tags,
	}
}

// Error renders the message, the input and an arrow line under the input marking the Spans, e.g.
//
//	Unclosed tag encountered; ...
//		<red><bold>hi</red>
//		^~~~^^~~~~^  ^~~~~^
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString("\n\t")
	sb.WriteString(e.Input)
	sb.WriteString("\n\t")
	sb.WriteString(e.Arrow())
	return sb.String()
}

// Arrow returns the line marking each Span with '^' at both ends and '~' in between.
// Columns are counted in runes, so the line stays aligned under non-ASCII input.
func (e *ParseError) Arrow() string {
	if len(e.Spans) == 0 {
		return ""
	}

	spans := slices.Clone(e.Spans)
	slices.SortFunc(spans, func(a, b Span) int { return a.Start - b.Start })

	column := func(pos int) int {
		pos = min(max(pos, 0), len(e.Input))
		return utf8.RuneCountInString(e.Input[:pos])
	}

	width := 0
	for _, s := range spans {
		width = max(width, column(s.End))
	}

	line := []byte(strings.Repeat(" ", width))
	for _, s := range spans {
		start, end := column(s.Start), column(s.End)
		if end <= start {
			continue
		}
		for i := start + 1; i < end-1; i++ {
			line[i] = '~'
		}
		line[start] = '^'
		line[end-1] = '^'
	}

	return strings.TrimRight(string(line), " ")
}
