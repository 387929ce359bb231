package bitstream

import (
	"bytes"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Writer is a growable bit sequence.  The zero value is not usable; call
// NewWriter.
type Writer struct {
	buf      bytes.Buffer
	bw       *bitio.Writer
	n        int
	finished bool
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.bw = bitio.NewWriter(&w.buf)
	return w
}

// WriteBit appends one bit.
func (w *Writer) WriteBit(set bool) {
	assert.Assertf(!w.finished, "WriteBit called after Bytes")
	err := w.bw.WriteBool(set)
	assert.Assertf(err == nil, "bitio.Writer.WriteBool failed: %v", err)
	w.n++
}

// WriteBits appends the low width bits of value, most significant first.
func (w *Writer) WriteBits(value uint64, width uint8) {
	assert.Assertf(!w.finished, "WriteBits called after Bytes")
	assert.Assertf(width <= 64, "width %d > 64", width)
	if width == 0 {
		return
	}
	if width < 64 {
		value &= (uint64(1) << width) - 1
	}
	err := w.bw.WriteBits(value, width)
	assert.Assertf(err == nil, "bitio.Writer.WriteBits failed: %v", err)
	w.n += int(width)
}

// Len returns the number of bits written so far, not counting padding.
func (w *Writer) Len() int {
	return w.n
}

// Padding returns the number of zero bits needed to round Len up to a whole
// number of bytes.
func (w *Writer) Padding() uint8 {
	return PaddingFor(w.n)
}

// Bytes pads the stream to a byte boundary and returns the packed bytes.
// No further bits may be written afterward.
func (w *Writer) Bytes() []byte {
	if !w.finished {
		err := w.bw.Close()
		assert.Assertf(err == nil, "bitio.Writer.Close failed: %v", err)
		w.finished = true
	}
	return w.buf.Bytes()
}

// PaddingFor returns (8 - n mod 8) mod 8.
func PaddingFor(n int) uint8 {
	return uint8((8 - n%8) % 8)
}
