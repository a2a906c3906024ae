package driver

import (
	"errors"
	"io/fs"

	"sonet/internal/codec"
	"sonet/internal/diag"
)

// DiagCode classifies an operation error for CLI reporting: codec sentinels
// map to their codec codes, filesystem errors to IOReadFailed, everything
// else to UnknownCode.
func DiagCode(err error) diag.Code {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, codec.ErrTruncated):
		return diag.CodecTruncated
	case errors.Is(err, codec.ErrBadFrame):
		return diag.CodecBadFrame
	case errors.As(err, &pathErr):
		return diag.IOReadFailed
	}
	return diag.UnknownCode
}
