package las

import (
	"errors"
	"fmt"
)

// Sentinel errors for package las.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File structure errors
	ErrBadSignature   = errors.New("file signature is not 'LASF'")
	ErrTruncatedFile  = errors.New("file is truncated")
	ErrUnknownCodec   = errors.New("compressed point block uses an unknown codec (laszip is not supported)")
	ErrNoInput        = errors.New("merge requires at least one input file")
	ErrUnknownVersion = errors.New("unknown file version")
)

// FormatError reports a file or a requested operation that is
// structurally invalid. Its message is surfaced to the user verbatim.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}
