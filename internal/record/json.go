package record

import (
	"bytes"
	"encoding/json"
	"io"
)

// EncodeJSON writes the record tree as UTF-8 JSON with 2-space indentation
// and non-ASCII characters left unescaped.
func EncodeJSON(w io.Writer, root Root) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

// RenderJSON returns the same JSON as EncodeJSON, without the encoder's
// trailing newline.
func RenderJSON(root Root) (string, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, root); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
