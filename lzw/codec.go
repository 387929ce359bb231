package lzw

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/chronos-tachyon/compressor"
	"github.com/chronos-tachyon/compressor/bitstream"
)

const methodName = "lzw"

// Codec is the LZW compression method.  The zero value is ready to use.
type Codec struct{}

// String returns the method name.
func (Codec) String() string {
	return methodName
}

// Compress encodes text into an LZW container.  Empty text produces empty
// output.  Every character of text must lie in U+0000 .. U+00FF.
func (Codec) Compress(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	input, err := toLatin1(text)
	if err != nil {
		return nil, err
	}

	w := bitstream.NewWriter()
	for _, code := range compressCodes(input) {
		w.WriteBits(uint64(code), CodeWidth)
	}

	packed := w.Bytes()
	out := make([]byte, 0, 1+len(packed))
	out = append(out, w.Padding())
	out = append(out, packed...)
	return out, nil
}

// Decompress decodes an LZW container.  Trailing bits too few to form a whole
// code are ignored.
func (Codec) Decompress(data []byte) (string, error) {
	if len(data) == 0 {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "missing padding length byte")
	}

	r, err := bitstream.NewReader(data[1:], uint64(data[0]))
	if err != nil {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "%v", err)
	}

	codes := make([]Code, 0, r.Len()/CodeWidth)
	for {
		value, err := r.ReadBits(CodeWidth)
		if err != nil {
			break
		}
		codes = append(codes, Code(value))
	}

	output, err := decompressCodes(codes)
	if err != nil {
		return "", err
	}
	return fromLatin1(output)
}

// compressCodes runs the dictionary over input, which must not be empty.
func compressCodes(input []byte) []Code {
	dict := NewDictionary()
	codes := make([]Code, 0, len(input)/2+1)

	// The current sequence is always input[start:i].
	start := 0
	for i := range input {
		if _, found := dict.Lookup(input[start : i+1]); found {
			continue
		}
		code, _ := dict.Lookup(input[start:i])
		codes = append(codes, code)
		dict.Add(input[start : i+1])
		start = i
	}

	code, _ := dict.Lookup(input[start:])
	return append(codes, code)
}

func decompressCodes(codes []Code) ([]byte, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	m := NewMirror()
	if codes[0] >= SeedSize {
		return nil, compressor.Errorf(methodName, compressor.ErrDecode, "bad code %d at index 0", codes[0])
	}
	prev, _ := m.Lookup(codes[0])
	out := append([]byte(nil), prev...)

	for index := 1; index < len(codes); index++ {
		code := codes[index]
		cur, found := m.Lookup(code)
		if !found {
			if code != m.NextCode() {
				return nil, compressor.Errorf(methodName, compressor.ErrDecode, "bad code %d at index %d", code, index)
			}
			// The compressor used the entry it was about to add.
			cur = appendFirst(prev, prev)
		}

		out = append(out, cur...)
		m.Add(appendFirst(prev, cur))
		prev = cur
	}
	return out, nil
}

// appendFirst returns a new slice holding seq followed by the first byte of
// from.
func appendFirst(seq []byte, from []byte) []byte {
	entry := make([]byte, len(seq)+1)
	copy(entry, seq)
	entry[len(seq)] = from[0]
	return entry
}

func toLatin1(text string) ([]byte, error) {
	for index, ch := range text {
		if ch == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[index:]); size == 1 {
				return nil, compressor.Errorf(methodName, compressor.ErrEncode, "input is not valid UTF-8 at byte %d", index)
			}
		}
		if ch > 0xff {
			return nil, compressor.Errorf(methodName, compressor.ErrEncode, "symbol %q (%U) is outside the Latin-1 alphabet", ch, ch)
		}
	}

	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, compressor.Errorf(methodName, compressor.ErrEncode, "%v", err)
	}
	return out, nil
}

func fromLatin1(data []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", compressor.Errorf(methodName, compressor.ErrDecode, "%v", err)
	}
	return string(out), nil
}

var _ compressor.Codec = Codec{}
