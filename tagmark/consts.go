package tagmark

// Markup syntax symbols.
const (
	TagStart   byte = '<'
	TagEnd     byte = '>'
	CloseTag   byte = '/'
	Separator  byte = ':'
	EscapeChar byte = '\\'
)

// Names of the reset directive. Both are matched case-insensitively.
const (
	Reset      = "reset"
	ResetShort = "r"
)

const (
	DefaultMaxPlaceholderPasses int = 16  // Default bound of the placeholder expansion cycles.
	DefaultMaxDepth             int = 256 // Default max number of simultaneously open tags.
	DefaultMaxWarnings          int = 64  // Default capacity of the Warnings collected by Parser.Parse.
)
