package filedriver

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrOutputExists is the cause of an *Error returned when the output path is
// already taken.
var ErrOutputExists = errors.New("output path already exists")

// Error is the single error category reported by Driver.
type Error struct {
	// Op is "compress" or "decompress".
	Op string

	// Msg is the human-readable description.
	Msg string

	// Err is the underlying cause.
	Err error
}

// Error fulfills the error interface.
func (err *Error) Error() string {
	return err.Op + ": " + err.Msg
}

// Unwrap returns the underlying cause.
func (err *Error) Unwrap() error {
	return err.Err
}

var _ error = (*Error)(nil)

func ioError(op Direction, role string, path string, err error) *Error {
	var msg string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		msg = fmt.Sprintf("%s file %q does not exist", role, path)
	case errors.Is(err, fs.ErrPermission):
		msg = fmt.Sprintf("permission denied: %q", path)
	default:
		msg = fmt.Sprintf("%s file %q: %v", role, path, err)
	}
	return &Error{Op: op.String(), Msg: msg, Err: err}
}

func outputExistsError(op Direction, path string) *Error {
	return &Error{
		Op:  op.String(),
		Msg: fmt.Sprintf("path %q already exists", path),
		Err: ErrOutputExists,
	}
}

func codecError(op Direction, err error) *Error {
	return &Error{Op: op.String(), Msg: err.Error(), Err: err}
}
