package codec

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// FrameToBytes converts a compressed frame string back to its raw bytes.
// Every character of a well-formed frame is below U+0100; anything else
// fails with ErrBadFrame.
func FrameToBytes(frame string) ([]byte, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(frame))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	return raw, nil
}

// FrameFromBytes interprets raw frame bytes as the single-byte-per-
// character frame string (Latin-1: byte N becomes U+00NN).
func FrameFromBytes(raw []byte) string {
	// ISO8859_1 decodes every byte; this cannot fail.
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}
