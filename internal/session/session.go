// Package session owns the single mutable document text behind one
// coarse-grained lock.
//
// Every operation is a pure function of the current text; validate,
// autocorrect, and decompress additionally replace the held text so that
// calls chain naturally (validate → fix → format). Tokens and record
// trees are rebuilt fresh on every call — the text is the only long-lived
// state.
package session

import (
	"errors"
	"sync"

	"sonet/internal/codec"
	"sonet/internal/correct"
	"sonet/internal/format"
	"sonet/internal/lexer"
	"sonet/internal/record"
	"sonet/internal/source"
	"sonet/internal/token"
	"sonet/internal/validate"
)

// ErrEmptyDocument is returned by operations that require content.
var ErrEmptyDocument = errors.New("session: document is empty")

// Options carries the tunables a session applies to its operations.
type Options struct {
	Format format.Options
	Codec  codec.Options
}

// Session holds the current document text for one caller. The mutex is
// the single mutual-exclusion boundary per document: the algorithms have
// no notion of partial state, so everything runs under it.
type Session struct {
	mu   sync.Mutex
	text string
	opts Options
}

// New creates a session with the given initial text (may be empty).
func New(text string, opts Options) *Session {
	return &Session{text: text, opts: opts}
}

// SetText replaces the held document text.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Text returns the current document text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// tokenize runs the canonical lexer over the current text.
// Вызывается только под мьютексом.
func (s *Session) tokenize() []token.Token {
	fs := source.NewFileSet()
	id := fs.AddVirtual("document", []byte(s.text))
	return lexer.Tokenize(fs.Get(id), lexer.Options{})
}

// Format pretty-prints the current text. The held text is not changed.
func (s *Session) Format() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" {
		return "", ErrEmptyDocument
	}
	return format.Format(s.tokenize(), s.opts.Format), nil
}

// Minify strips all whitespace between tags. The held text is not changed.
func (s *Session) Minify() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" {
		return "", ErrEmptyDocument
	}
	return format.Minify(s.tokenize()), nil
}

// Validate annotates structural errors and replaces the held text with
// the annotated version, so a follow-up Format shows the annotations.
func (s *Session) Validate() validate.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := validate.Validate(s.text, validate.Options{})
	s.text = res.Annotated
	return res
}

// Autocorrect rebalances the document and replaces the held text.
func (s *Session) Autocorrect() correct.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := correct.Autocorrect(s.text)
	s.text = res.Corrected
	return res
}

// ExportRecord projects the current text into the record tree.
func (s *Session) ExportRecord() (record.Root, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" {
		return record.Root{}, ErrEmptyDocument
	}
	return record.Project(s.tokenize()), nil
}

// Compress encodes the current text; the held text is not changed.
func (s *Session) Compress() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" {
		return "", ErrEmptyDocument
	}
	return codec.Compress(s.text, s.opts.Codec)
}

// Decompress decodes the given frame and replaces the held text with the
// result.
func (s *Session) Decompress(compressed string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, err := codec.Decompress(compressed)
	if err != nil {
		return "", err
	}
	s.text = text
	return text, nil
}
