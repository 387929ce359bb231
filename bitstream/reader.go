package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// ErrPadding is returned by NewReader when the padding count cannot describe
// the given bytes.
var ErrPadding = errors.New("bitstream: invalid padding")

// Reader reads bits back out of a packed byte sequence, with the padding
// suffix removed.
type Reader struct {
	br        *bitio.Reader
	total     int
	remaining int
}

// NewReader returns a Reader over data, ignoring its final padding bits.
// padding must be less than 8 and no greater than the number of bits in data.
func NewReader(data []byte, padding uint64) (*Reader, error) {
	size := uint64(len(data)) * 8
	if padding >= 8 {
		return nil, fmt.Errorf("%w: %d padding bits, want fewer than 8", ErrPadding, padding)
	}
	if padding > size {
		return nil, fmt.Errorf("%w: %d padding bits, only %d bits available", ErrPadding, padding, size)
	}
	total := int(size - padding)
	return &Reader{
		br:        bitio.NewReader(bytes.NewReader(data)),
		total:     total,
		remaining: total,
	}, nil
}

// Len returns the number of bits in the stream after removing padding.
func (r *Reader) Len() int {
	return r.total
}

// Remaining returns the number of bits not yet read.
func (r *Reader) Remaining() int {
	return r.remaining
}

// ReadBit reads the next bit.  It returns io.EOF when the stream is
// exhausted.
func (r *Reader) ReadBit() (bool, error) {
	if r.remaining == 0 {
		return false, io.EOF
	}
	set, err := r.br.ReadBool()
	assert.Assertf(err == nil, "bitio.Reader.ReadBool failed: %v", err)
	r.remaining--
	return set, nil
}

// ReadBits reads the next width bits as an unsigned integer, most significant
// bit first.
//
// If the stream is exhausted, it returns io.EOF.  If some but fewer than width
// bits remain, it returns io.ErrUnexpectedEOF and consumes nothing.
//
func (r *Reader) ReadBits(width uint8) (uint64, error) {
	assert.Assertf(width <= 64, "width %d > 64", width)
	if width == 0 {
		return 0, nil
	}
	if r.remaining == 0 {
		return 0, io.EOF
	}
	if r.remaining < int(width) {
		return 0, io.ErrUnexpectedEOF
	}
	value, err := r.br.ReadBits(width)
	assert.Assertf(err == nil, "bitio.Reader.ReadBits failed: %v", err)
	r.remaining -= int(width)
	return value, nil
}
