// Package driver wires the document operations to file input for the CLI
// front end. The core stays I/O-free; everything that touches the
// filesystem lives here.
package driver

import (
	"fmt"
	"os"

	"sonet/internal/codec"
	"sonet/internal/correct"
	"sonet/internal/format"
	"sonet/internal/record"
	"sonet/internal/session"
	"sonet/internal/source"
	"sonet/internal/validate"
)

// Options carries per-invocation tunables down to the core.
type Options struct {
	Format format.Options
	Codec  codec.Options
}

func (o Options) sessionOptions() session.Options {
	return session.Options{Format: o.Format, Codec: o.Codec}
}

// LoadText reads one document from disk (BOM stripped, CRLF normalized).
func LoadText(path string) (string, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(fs.Get(id).Content), nil
}

func open(path string, opts Options) (*session.Session, error) {
	text, err := LoadText(path)
	if err != nil {
		return nil, err
	}
	return session.New(text, opts.sessionOptions()), nil
}

// Format pretty-prints the document at path.
func Format(path string, opts Options) (string, error) {
	s, err := open(path, opts)
	if err != nil {
		return "", err
	}
	return s.Format()
}

// Minify strips inter-tag whitespace from the document at path.
func Minify(path string, opts Options) (string, error) {
	s, err := open(path, opts)
	if err != nil {
		return "", err
	}
	return s.Minify()
}

// VerifyResult is everything the verify command reports.
type VerifyResult struct {
	Validation validate.Result
	// Correction is set when fixing was requested.
	Correction *correct.Result
	// Output is the final text: annotated (plain verify) or corrected and
	// formatted (verify --fix).
	Output string
}

// Verify validates the document at path; with fix it autocorrects the
// original (unannotated) text and returns the corrected document
// formatted.
func Verify(path string, fix bool, opts Options) (VerifyResult, error) {
	text, err := LoadText(path)
	if err != nil {
		return VerifyResult{}, err
	}

	s := session.New(text, opts.sessionOptions())
	res := VerifyResult{Validation: s.Validate()}

	if !fix {
		res.Output = res.Validation.Annotated
		return res, nil
	}

	// Чиним исходный текст: аннотации содержат примеры тегов и не должны
	// попадать в корректор.
	s.SetText(text)
	corrected := s.Autocorrect()
	res.Correction = &corrected

	formatted, err := s.Format()
	if err != nil {
		return VerifyResult{}, err
	}
	res.Output = formatted
	return res, nil
}

// Export projects the document at path and renders it as JSON.
func Export(path string, opts Options) (record.Root, string, error) {
	s, err := open(path, opts)
	if err != nil {
		return record.Root{}, "", err
	}
	root, err := s.ExportRecord()
	if err != nil {
		return record.Root{}, "", err
	}
	rendered, err := record.RenderJSON(root)
	if err != nil {
		return record.Root{}, "", err
	}
	return root, rendered, nil
}

// Compress encodes the document at path and returns both the frame string
// and the raw frame bytes for single-byte persistence.
func Compress(path string, opts Options) (string, []byte, error) {
	s, err := open(path, opts)
	if err != nil {
		return "", nil, err
	}
	frame, err := s.Compress()
	if err != nil {
		return "", nil, err
	}
	raw, err := codec.FrameToBytes(frame)
	if err != nil {
		return "", nil, err
	}
	return frame, raw, nil
}

// Decompress decodes the frame file at path back into document text. The
// file is read raw: frames may legitimately contain CR/LF byte pairs, so
// the text-loading normalization must not touch them.
func Decompress(path string, opts Options) (string, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	frame := codec.FrameFromBytes(raw)
	s := session.New("", opts.sessionOptions())
	return s.Decompress(frame)
}
