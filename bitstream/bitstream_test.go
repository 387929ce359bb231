package bitstream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BitstreamSuite struct {
	suite.Suite
}

func TestBitstreamSuite(t *testing.T) {
	suite.Run(t, new(BitstreamSuite))
}

func (s *BitstreamSuite) TestWriteBits() {
	w := NewWriter()
	w.WriteBits(0x061, 12)
	w.WriteBits(0x100, 12)
	w.WriteBits(0x101, 12)

	s.Equal(36, w.Len())
	s.Equal(uint8(4), w.Padding())
	s.Equal([]byte{0x06, 0x11, 0x00, 0x10, 0x10}, w.Bytes())
}

func (s *BitstreamSuite) TestWriteBitsIgnoresHighBits() {
	w := NewWriter()
	w.WriteBits(0xfff5, 4)
	w.WriteBits(0, 0)
	w.WriteBits(0xa, 4)

	s.Equal(8, w.Len())
	s.Equal(uint8(0), w.Padding())
	s.Equal([]byte{0x5a}, w.Bytes())
}

func (s *BitstreamSuite) TestWriteBit() {
	w := NewWriter()
	for _, set := range []bool{true, false, true, true} {
		w.WriteBit(set)
	}

	s.Equal(4, w.Len())
	s.Equal(uint8(4), w.Padding())
	s.Equal([]byte{0xb0}, w.Bytes())
	s.Equal([]byte{0xb0}, w.Bytes())
}

func (s *BitstreamSuite) TestEmptyWriter() {
	w := NewWriter()
	s.Equal(0, w.Len())
	s.Equal(uint8(0), w.Padding())
	s.Empty(w.Bytes())
}

func (s *BitstreamSuite) TestPaddingFor() {
	for n, expect := range []uint8{0, 7, 6, 5, 4, 3, 2, 1, 0, 7} {
		s.Equal(expect, PaddingFor(n), "n=%d", n)
	}
}

func (s *BitstreamSuite) TestReader() {
	r, err := NewReader([]byte{0xb0}, 4)
	s.Require().NoError(err)
	s.Equal(4, r.Len())

	var bits []bool
	for {
		set, err := r.ReadBit()
		if err == io.EOF {
			break
		}
		s.Require().NoError(err)
		bits = append(bits, set)
	}
	s.Equal([]bool{true, false, true, true}, bits)
	s.Equal(0, r.Remaining())
}

func (s *BitstreamSuite) TestReaderReadBits() {
	r, err := NewReader([]byte{0x06, 0x11, 0x00, 0x10, 0x10}, 4)
	s.Require().NoError(err)

	var codes []uint64
	for {
		code, err := r.ReadBits(12)
		if err == io.EOF {
			break
		}
		s.Require().NoError(err)
		codes = append(codes, code)
	}
	s.Equal([]uint64{0x061, 0x100, 0x101}, codes)
}

func (s *BitstreamSuite) TestReaderShortRead() {
	r, err := NewReader([]byte{0x06, 0x10}, 0)
	s.Require().NoError(err)

	code, err := r.ReadBits(12)
	s.NoError(err)
	s.Equal(uint64(0x061), code)

	_, err = r.ReadBits(12)
	s.Equal(io.ErrUnexpectedEOF, err)
	s.Equal(4, r.Remaining())
}

func (s *BitstreamSuite) TestReaderBadPadding() {
	_, err := NewReader([]byte{0xff}, 8)
	s.True(errors.Is(err, ErrPadding))

	_, err = NewReader(nil, 3)
	s.True(errors.Is(err, ErrPadding))

	r, err := NewReader(nil, 0)
	s.Require().NoError(err)
	_, err = r.ReadBit()
	s.Equal(io.EOF, err)
}

func (s *BitstreamSuite) TestRoundTrip() {
	w := NewWriter()
	w.WriteBits(0x2, 2)
	w.WriteBit(true)
	w.WriteBits(0x1234567, 28)

	r, err := NewReader(w.Bytes(), uint64(w.Padding()))
	s.Require().NoError(err)
	s.Equal(31, r.Len())

	v, err := r.ReadBits(2)
	s.NoError(err)
	s.Equal(uint64(0x2), v)

	set, err := r.ReadBit()
	s.NoError(err)
	s.True(set)

	v, err = r.ReadBits(28)
	s.NoError(err)
	s.Equal(uint64(0x1234567), v)
}
