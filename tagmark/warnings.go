package tagmark

import "fmt"

// Warning is a problem the lenient parser recovered from by keeping the offending tag as text.
type Warning struct {
	Issue Issue `json:"issue"`

	// Span covers the offending token of the input.
	Span Span `json:"span"`

	Description string `json:"description"`
}

// WarningOverflowPolicy decides what happens to Warnings added past the capacity.
type WarningOverflowPolicy int

const (
	// WarnOverflowNoCap ignores the capacity.
	WarnOverflowNoCap WarningOverflowPolicy = iota

	// WarnOverflowNoRec records nothing at all.
	WarnOverflowNoRec

	// WarnOverflowDrop silently discards the Warnings past the capacity.
	WarnOverflowDrop

	// WarnOverflowTrunc discards the Warnings past the capacity, counts them
	// and ends the list with an [IssueWarningsTruncated] marker.
	WarnOverflowTrunc
)

// Warnings collects the Warnings of one or more parses.
// Unless the policy is [WarnOverflowNoCap], at most capacity Warnings are kept.
type Warnings struct {
	policy   WarningOverflowPolicy
	items    []Warning
	capacity int

	full bool

	// dropped counts the discarded Warnings, only under [WarnOverflowTrunc]
	dropped int

	// dropStart is the input offset of the first discarded Warning
	dropStart int
}

// NewWarnings creates a Warnings collector with the given overflow policy and capacity.
// It returns a ConfigError if capacity is negative.
func NewWarnings(policy WarningOverflowPolicy, capacity int) (Warnings, error) {
	if capacity < 0 {
		err := fmt.Errorf("warnings capacity must be >= 0, got %d", capacity)
		return Warnings{}, NewConfigError(IssueNegativeWarningsCap, err)
	}

	return Warnings{
		policy:   policy,
		items:    make([]Warning, 0, capacity),
		capacity: capacity,
	}, nil
}

// Overflowed reports whether a Warning has been discarded for lack of room.
func (w *Warnings) Overflowed() bool {
	return w.full
}

// Dropped is the number of Warnings discarded under [WarnOverflowTrunc].
func (w *Warnings) Dropped() int {
	return w.dropped
}

// DropStart is the input offset of the first discarded Warning.
func (w *Warnings) DropStart() int {
	return w.dropStart
}

func (w *Warnings) List() []Warning {
	return w.items
}

// room is the number of slots for regular Warnings. Truncation keeps the last slot for its marker.
func (w *Warnings) room() int {
	if w.policy == WarnOverflowTrunc {
		return max(w.capacity-1, 0)
	}
	return w.capacity
}

// Add records item according to the overflow policy. Add on a nil receiver does nothing.
func (w *Warnings) Add(item Warning) {
	if w == nil || w.policy == WarnOverflowNoRec {
		return
	}

	if w.policy == WarnOverflowNoCap || len(w.items) < w.room() && !w.full {
		w.items = append(w.items, item)
		return
	}

	if w.policy == WarnOverflowTrunc {
		w.dropped++
	}

	if w.full {
		return
	}

	w.full = true
	w.dropStart = item.Span.Start

	if w.policy == WarnOverflowTrunc && w.capacity > 0 {
		w.items = append(w.items, Warning{
			Issue:       IssueWarningsTruncated,
			Span:        Span{item.Span.Start, item.Span.Start},
			Description: "too many warnings; further warnings suppressed",
		})
	}
}

// addf records the Warning with the formatted description.
func (w *Warnings) addf(issue Issue, span Span, format string, args ...any) {
	if w == nil || w.policy == WarnOverflowNoRec {
		return
	}
	w.Add(Warning{Issue: issue, Span: span, Description: fmt.Sprintf(format, args...)})
}
