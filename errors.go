package compressor

import (
	"errors"
	"fmt"
)

// Kinds of MethodError.  Use errors.Is to test for them.
var (
	// ErrFormat means the container is malformed: out-of-range header
	// fields, missing header bytes, or a corrupt tree.
	ErrFormat = errors.New("format error")

	// ErrEncode means some input symbol cannot be encoded.
	ErrEncode = errors.New("encode error")

	// ErrDecode means the coded payload does not resolve against the
	// reconstructed tables.
	ErrDecode = errors.New("decode error")

	// ErrStructure means a Huffman tree violates the "zero or two
	// children" invariant.
	ErrStructure = errors.New("structural error")
)

// MethodError is the error category for failures inside a compression method.
type MethodError struct {
	// Method names the codec, e.g. "huffman".
	Method string

	// Kind is one of ErrFormat, ErrEncode, ErrDecode, or ErrStructure.
	Kind error

	// Msg is the human-readable cause.
	Msg string
}

// Errorf constructs a *MethodError.
func Errorf(method string, kind error, format string, args ...interface{}) *MethodError {
	return &MethodError{
		Method: method,
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Error fulfills the error interface.
func (err *MethodError) Error() string {
	return err.Method + ": " + err.Kind.Error() + ": " + err.Msg
}

// Unwrap returns the kind of the error.
func (err *MethodError) Unwrap() error {
	return err.Kind
}

var _ error = (*MethodError)(nil)
