package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for package pipeline.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrNoSources    = errors.New("no source files given")
	ErrUserDeclined = errors.New("aborted by user")
)

// UnsupportedError reports a requested capability outside the
// supported set, raised before any file is opened.
type UnsupportedError struct {
	What      string // "point format" or "file version"
	Got       string
	Supported []string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s %s is not supported (supported: %s)",
		e.What, e.Got, strings.Join(e.Supported, ", "))
}

// NotFoundError reports a source that could not be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
