package sheets

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the named spreadsheet does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrPathTraversal indicates a filename escaping the base directory.
var ErrPathTraversal = errors.New("path traversal not allowed")

// ErrUnsupportedFormat indicates a file extension other than xlsx or csv.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidColor indicates a color string that is not RRGGBB or AARRGGBB hex.
var ErrInvalidColor = errors.New("invalid color format")

// OpError represents a failure of a store operation on a specific file.
type OpError struct {
	Op   string // "read", "write", "format", "chart", ...
	File string
	Err  error
}

func (e *OpError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.File, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op, file string, err error) error {
	return &OpError{Op: op, File: file, Err: err}
}
