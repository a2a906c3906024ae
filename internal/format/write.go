package format

// Writer accumulates formatted output and tracks the current indentation
// level. Adapted for line-oriented printing: output never carries a
// trailing newline.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, 256),
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// String returns the accumulated formatted output as a string.
func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	spaceCount := w.indentLevel * w.opt.IndentWidth
	for i := 0; i < spaceCount; i++ {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.updateLineState(s[len(s)-1])
}

// Line writes one indented line: a separating newline when output already
// exists, then the indent, then s.
func (w *Writer) Line(s string) {
	if len(w.buf) > 0 {
		w.Newline()
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.atLineStart = false
}

func (w *Writer) updateLineState(last byte) {
	w.atLineStart = last == '\n'
}

// Newline writes a newline if the output doesn't already end with one.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level, stopping at zero.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
