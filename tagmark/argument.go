package tagmark

import (
	"fmt"
	"strconv"
	"strings"
)

// Argument is one tag part after the name, e.g. "show_text" in "<hover:show_text:'hi'>".
// The derived views are computed on every call.
type Argument struct {
	value string
}

func NewArgument(value string) Argument {
	return Argument{value: value}
}

func (a Argument) Value() string {
	return a.value
}

func (a Argument) Lower() string {
	return strings.ToLower(a.value)
}

// IsTrue is true for "true" and "on".
func (a Argument) IsTrue() bool {
	return a.value == "true" || a.value == "on"
}

// IsFalse is true for "false" and "off".
func (a Argument) IsFalse() bool {
	return a.value == "false" || a.value == "off"
}

func (a Argument) AsInt() (int, bool) {
	v, err := strconv.Atoi(a.value)
	return v, err == nil
}

func (a Argument) AsDouble() (float64, bool) {
	v, err := strconv.ParseFloat(a.value, 64)
	return v, err == nil
}

func (a Argument) String() string {
	return a.value
}

// ArgumentQueue is a cursor over the arguments of a single tag, handed to the tag factories.
type ArgumentQueue struct {
	tag  string
	args []Argument
	pos  int
}

func NewArgumentQueue(tag string, args []Argument) *ArgumentQueue {
	return &ArgumentQueue{tag: tag, args: args}
}

// Tag is the name of the tag the arguments belong to.
func (q *ArgumentQueue) Tag() string {
	return q.tag
}

func (q *ArgumentQueue) HasNext() bool {
	return q.pos < len(q.args)
}

// Remaining is the number of arguments not popped yet.
func (q *ArgumentQueue) Remaining() int {
	return len(q.args) - q.pos
}

func (q *ArgumentQueue) Peek() (Argument, bool) {
	if !q.HasNext() {
		return Argument{}, false
	}
	return q.args[q.pos], true
}

// Pop returns the next argument or an error naming what was expected.
func (q *ArgumentQueue) Pop(expected string) (Argument, error) {
	if !q.HasNext() {
		return Argument{}, fmt.Errorf("tag %q: missing argument: %s", q.tag, expected)
	}
	a := q.args[q.pos]
	q.pos++
	return a, nil
}

// PopOr returns the next argument or false if there is none.
func (q *ArgumentQueue) PopOr() (Argument, bool) {
	a, ok := q.Peek()
	if ok {
		q.pos++
	}
	return a, ok
}

// Rest pops every remaining argument.
func (q *ArgumentQueue) Rest() []Argument {
	rest := q.args[q.pos:]
	q.pos = len(q.args)
	return rest
}

func (q *ArgumentQueue) Reset() {
	q.pos = 0
}
