package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"sonet/internal/source"
)

// Cursor представляет собой позицию в документе
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided document.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

func (c *Cursor) limit() uint32 {
	if c.Limit != 0 {
		return c.Limit
	}
	lenFileContent, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenFileContent
}

// EOF проверяет, достигнут ли конец документа
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Seek устанавливает курсор на абсолютный offset (не дальше Limit).
func (c *Cursor) Seek(off uint32) {
	if off > c.limit() {
		off = c.limit()
	}
	c.Off = off
}

// IndexByteFrom returns the absolute offset of the first occurrence of b at
// or after the cursor position, and false if b does not occur before Limit.
func (c *Cursor) IndexByteFrom(b byte) (uint32, bool) {
	for i := c.Off; i < c.limit(); i++ {
		if c.File.Content[i] == b {
			return i, true
		}
	}
	return 0, false
}
