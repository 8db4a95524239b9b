package tagmark

import "strings"

func equalFold(a, b string) bool {
	return len(a) == len(b) && strings.EqualFold(a, b)
}

// ValidTagName reports whether name matches [!?#]?[a-z0-9_-]* and is not empty.
func ValidTagName(name string) bool {
	if name == "" {
		return false
	}

	i := 0
	switch name[0] {
	case '!', '?', '#':
		i = 1
	}

	for ; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return false
		}
	}

	return true
}
