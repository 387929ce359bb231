package huffman

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/chronos-tachyon/compressor"
	"github.com/chronos-tachyon/compressor/bitstream"
)

const (
	methodName = "huffman"

	// HeaderSize is the size of the fixed container header: the padding
	// bit count and the tree length, each a big-endian uint64.
	HeaderSize = 16
)

// Codec is the Huffman compression method.  The zero value is ready to use.
type Codec struct{}

// String returns the method name.
func (Codec) String() string {
	return methodName
}

// Compress encodes text into a Huffman container.  Empty text produces empty
// output.
func (Codec) Compress(text string) ([]byte, error) {
	if index := invalidUTF8Index(text); index >= 0 {
		return nil, compressor.Errorf(methodName, compressor.ErrEncode, "input is not valid UTF-8 at byte %d", index)
	}

	root := Build(CountFrequencies(text))
	if root == nil {
		return []byte{}, nil
	}
	return compressWithTree(text, root)
}

// Decompress decodes a Huffman container.  Empty input produces empty text.
func (Codec) Decompress(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data) < HeaderSize {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "invalid header: %d bytes, want %d", len(data), HeaderSize)
	}

	padding := binary.BigEndian.Uint64(data[0:8])
	treeLen := binary.BigEndian.Uint64(data[8:16])
	rest := data[HeaderSize:]

	// Padding rounds the coded bits up to a multiple of 8, so it is
	// always less than 8.
	if padding >= 8 || treeLen > uint64(len(rest)) {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "invalid header: padding_len %d or tree_len %d out of bounds", padding, treeLen)
	}

	root, err := Deserialize(rest[:treeLen])
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "invalid header: empty Huffman tree")
	}

	r, err := bitstream.NewReader(rest[treeLen:], padding)
	if err != nil {
		return "", compressor.Errorf(methodName, compressor.ErrFormat, "%v", err)
	}
	return root.Decode(r)
}

// compressWithTree encodes text against an existing tree and frames the
// result.  Every symbol of text must be a leaf of root.
func compressWithTree(text string, root *Node) ([]byte, error) {
	codes := root.Codes()

	w := bitstream.NewWriter()
	for _, ch := range text {
		hc, found := codes[Symbol(ch)]
		if !found {
			return nil, compressor.Errorf(methodName, compressor.ErrEncode, "code for symbol %s missing from Huffman tree", Symbol(ch))
		}
		w.WriteBits(hc.Bits, hc.Size)
	}

	tree, err := root.Serialize()
	if err != nil {
		return nil, err
	}

	packed := w.Bytes()
	out := make([]byte, HeaderSize, HeaderSize+len(tree)+len(packed))
	binary.BigEndian.PutUint64(out[0:8], uint64(w.Padding()))
	binary.BigEndian.PutUint64(out[8:16], uint64(len(tree)))
	out = append(out, tree...)
	out = append(out, packed...)
	return out, nil
}

func invalidUTF8Index(text string) int {
	for index, ch := range text {
		if ch != utf8.RuneError {
			continue
		}
		if _, size := utf8.DecodeRuneInString(text[index:]); size == 1 {
			return index
		}
	}
	return -1
}

var _ compressor.Codec = Codec{}
