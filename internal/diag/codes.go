package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Структурные (валидатор)
	StructOrphanTag  Code = 1001
	StructMismatch   Code = 1002
	StructMissingTag Code = 1003

	// Кодек
	CodecTruncated Code = 2001
	CodecBadFrame  Code = 2002

	// Ввод-вывод (CLI)
	IOReadFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	StructOrphanTag:  "closing tag without a matching opening tag",
	StructMismatch:   "closing tag does not match the innermost open tag",
	StructMissingTag: "opening tag is never closed",

	CodecTruncated: "compressed frame is truncated",
	CodecBadFrame:  "compressed frame is malformed",

	IOReadFailed: "failed to read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CDC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
