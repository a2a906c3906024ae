package diag

// Diagnostic is one structural finding, anchored to a source line.
// The validator is line-oriented, so the anchor is a line index rather
// than a byte span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Line is the 0-based index of the annotated line.
	Line int
	// Tag is the tag name the diagnostic is about.
	Tag string
}
