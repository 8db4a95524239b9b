package tagmark

import (
	"fmt"
)

// ConfigError describes an error which occures during the configuration of a [Registry] or a [Parser],
// like an invalid tag name or negative [Limits].
type ConfigError struct {
	Issue Issue // Issue is a kind or the problem occured.
	Err   error // Err contains original error created during some configuration process.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}

func newInvalidTagNameError(name string) error {
	return NewConfigError(IssueInvalidTagName, fmt.Errorf("tag name %q does not match [!?#]?[a-z0-9_-]*", name))
}

func newDuplicateTagNameError(name string) error {
	return NewConfigError(IssueDuplicateTagName, fmt.Errorf("tag with name %q already registered", name))
}
