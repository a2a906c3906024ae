// Package format pretty-prints and minifies tag-document token streams.
//
// The formatter walks the canonical token stream with a nesting counter:
// four spaces per level by default, and leaf elements (open tag, text,
// close tag in immediate succession) collapsed onto one line when the
// whitespace-normalized text fits the configured width. Longer leaf text
// is word-wrapped one level deeper, never breaking a single long word.
//
// The minifier is the degenerate printer: token concatenation with no
// separators at all.
package format
