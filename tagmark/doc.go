// Package tagmark parses angle-bracket tag markup into styled text components.
//
// A message such as
//
//	<red>Hello <bold>world</bold></red>! <hover:show_text:'<gray>tip'>hover me</hover>
//
// is processed in three stages:
//
//   - Placeholder expansion: tags naming string placeholders are replaced with their markup,
//     repeatedly, up to [Limits.MaxPlaceholderPasses] times.
//   - Tree building: the message is tokenized and arranged into a [Tree] of text, tag and
//     placeholder nodes. Tag names are resolved through a [TagResolver].
//   - Application: the tree is folded into one [styled.Component] by [Render].
//
// # Syntax
//
// A tag is "<name>" or "<name:arg:arg>", closed by "</name>" or by a closing tag repeating a prefix of
// the arguments. Names are case-insensitive, arguments are not. Arguments may be quoted with ' or " to
// contain ':' or '>'. A ':' followed by "//" does not split, so URLs need no quotes.
//
// "\<" makes the tag start literal in text, and a backslash before the active quote makes it literal inside
// a quoted argument. "<>" is plain text.
//
// # Notes and Policies
//
//   - Unknown tags are kept as plain text, in both modes.
//   - In lenient mode a closing tag matching an outer tag closes every tag opened after it, unmatched
//     closing tags are plain text and tags still open at the end are closed implicitly.
//   - In strict mode those cases, and the <reset> directive, fail with a [*ParseError].
//   - Nesting deeper than [Limits.MaxDepth] fails in both modes.
package tagmark
