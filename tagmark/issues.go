package tagmark

// Issue defines types of problems we might encounter during the configuration or the parsing processes.
type Issue int

const (
	// IssueUnknownTag means the tag's name is neither a registered tag nor a placeholder,
	// so the tag is kept as plain text.
	IssueUnknownTag Issue = iota

	// IssueTagResolveFailed means the tag's factory rejected the arguments, so the tag is kept as plain text.
	IssueTagResolveFailed

	// IssueUnmatchedCloseTag means there is no open tag the closing tag can close, so it is kept as plain text.
	IssueUnmatchedCloseTag

	// IssueResetInStrictMode occurs when the reset directive is used while in strict mode.
	IssueResetInStrictMode

	// IssueCloseOrder occurs in strict mode when a closing tag matches an ancestor of the innermost open tag.
	IssueCloseOrder

	// IssueUnclosedTag occurs in strict mode when the end of the input is reached with open tags.
	IssueUnclosedTag

	// IssueMaxDepthExceeded occurs when the number of simultaneously open tags exceeds [Limits.MaxDepth].
	IssueMaxDepthExceeded

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated

	// IssueNegativeWarningsCap reports an invalid (negative) warnings capacity.
	IssueNegativeWarningsCap

	// IssueNegativeLimit occurs during configuration when any value in [Limits] is negative.
	IssueNegativeLimit

	// IssueInvalidTagName occurs when a tag is registered with a name not matching [!?#]?[a-z0-9_-]*.
	IssueInvalidTagName

	// IssueDuplicateTagName occurs when the tag name is already registered.
	IssueDuplicateTagName

	// IssueInvalidPlaceholder occurs when the placeholder definition can not be used.
	IssueInvalidPlaceholder

	NumIssues
)

var mapIssueToName = [NumIssues]string{
	IssueUnknownTag:          "Unknown Tag",
	IssueTagResolveFailed:    "Tag Resolve Failed",
	IssueUnmatchedCloseTag:   "Unmatched Close Tag",
	IssueResetInStrictMode:   "Reset In Strict Mode",
	IssueCloseOrder:          "Close Order",
	IssueUnclosedTag:         "Unclosed Tag",
	IssueMaxDepthExceeded:    "Max Depth Exceeded",
	IssueWarningsTruncated:   "Warnings Truncated",
	IssueNegativeWarningsCap: "Negative Warnings Cap",
	IssueNegativeLimit:       "Negative Limit",
	IssueInvalidTagName:      "Invalid Tag Name",
	IssueDuplicateTagName:    "Duplicate Tag Name",
	IssueInvalidPlaceholder:  "Invalid Placeholder",
}

func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return mapIssueToName[i]
}

func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
