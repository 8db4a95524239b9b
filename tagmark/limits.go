package tagmark

import "fmt"

// Limits define upper bounds used during parsing to prevent excessive work on hostile input.
// Zero values are replaced by the defaults.
type Limits struct {

	// MaxPlaceholderPasses defines how many times the string placeholders are substituted
	// before the expansion is cut off. Mutually recursive placeholders stop here.
	MaxPlaceholderPasses int

	// MaxDepth defines the maximum number of simultaneously open tags.
	// Exceeding it fails the parse with [IssueMaxDepthExceeded] in both modes.
	MaxDepth int

	// MaxWarnings is the capacity of the Warnings collected by [Parser.Parse].
	MaxWarnings int
}

// DefaultLimits returns the Limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxPlaceholderPasses: DefaultMaxPlaceholderPasses,
		MaxDepth:             DefaultMaxDepth,
		MaxWarnings:          DefaultMaxWarnings,
	}
}

// Validate checks if the limits are not negative.
// Return [ConfigError] if at least on of the values is negative.
func (l Limits) Validate() error {

	values := [3]int{
		l.MaxPlaceholderPasses,
		l.MaxDepth,
		l.MaxWarnings,
	}

	names := [3]string{
		"MaxPlaceholderPasses",
		"MaxDepth",
		"MaxWarnings",
	}

	for i := range values {
		if values[i] < 0 {
			err := fmt.Errorf("%s must be >= 0, got %d", names[i], values[i])
			return NewConfigError(IssueNegativeLimit, err)
		}
	}

	return nil
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxPlaceholderPasses == 0 {
		l.MaxPlaceholderPasses = d.MaxPlaceholderPasses
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.MaxWarnings == 0 {
		l.MaxWarnings = d.MaxWarnings
	}
	return l
}
