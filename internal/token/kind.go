package token

// Kind represents the category of a document token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the document.
	EOF
	// OpenTag represents an opening tag like <user id="1">.
	OpenTag
	// CloseTag represents a closing tag like </user>.
	CloseTag
	// Text represents a non-whitespace text span between tags.
	Text
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case OpenTag:
		return "OpenTag"
	case CloseTag:
		return "CloseTag"
	case Text:
		return "Text"
	}
	return "Unknown"
}
