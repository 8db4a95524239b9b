package tagmark

import "strings"

// tagCloses reports whether the closing tag parts close the open tag parts.
// The names are compared ignoring case, the arguments exactly, and the closing tag
// may omit trailing arguments.
func tagCloses(closeParts []string, openParts []TagPart) bool {
	if len(closeParts) > len(openParts) {
		return false
	}

	if !strings.EqualFold(closeParts[0], openParts[0].Value) {
		return false
	}

	for i := 1; i < len(closeParts); i++ {
		if closeParts[i] != openParts[i].Value {
			return false
		}
	}

	return true
}
