package token

import (
	"sonet/internal/source"
)

// Attr is a single name="value" attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an insertion-ordered attribute list.
type Attrs []Attr

// Get returns the value for name and whether it is present.
func (a Attrs) Get(name string) (string, bool) {
	for i := range a {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return "", false
}

// Set overwrites the value for name if present, otherwise appends.
// Порядок первой вставки сохраняется при перезаписи.
func (a Attrs) Set(name, value string) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Token is one lexical unit of the document: an open tag, a close tag, or
// a text span.
type Token struct {
	Kind Kind
	// Name is the tag name for OpenTag/CloseTag, empty for Text.
	Name string
	// Attrs holds open-tag attributes in insertion order; nil otherwise.
	Attrs Attrs
	// Raw is the exact token text: the full tag including angle brackets,
	// or trimmed text content.
	Raw  string
	Span source.Span
}

// IsTag reports whether the token is an opening or closing tag.
func (t Token) IsTag() bool {
	return t.Kind == OpenTag || t.Kind == CloseTag
}
