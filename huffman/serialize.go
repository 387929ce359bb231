package huffman

import (
	"bytes"
	"unicode/utf8"

	"github.com/chronos-tachyon/compressor"
)

// Tag bytes of the serialized tree.
const (
	tagInternal byte = '0'
	tagLeaf     byte = '1'
)

// MaxDepth is the deepest leaf Deserialize accepts.  A Code holds at most 64
// bits, so no tree with usable codes is deeper.
const MaxDepth = 64

// Serialize encodes the tree in preorder.  An internal node is written as the
// byte '0' followed by its left and right subtrees; a leaf is written as the
// byte '1' followed by its symbol in UTF-8.  A nil tree serializes to nothing.
//
// A symbol that is not a valid Unicode scalar value fails with
// compressor.ErrEncode, and a node with exactly one child fails with
// compressor.ErrStructure.
//
func (n *Node) Serialize() ([]byte, error) {
	if n == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := n.serializeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) serializeTo(buf *bytes.Buffer) error {
	switch {
	case n.IsLeaf():
		if !utf8.ValidRune(rune(n.Symbol)) {
			return compressor.Errorf(methodName, compressor.ErrEncode, "symbol %d cannot be stored in the tree", int32(n.Symbol))
		}
		buf.WriteByte(tagLeaf)
		buf.WriteRune(rune(n.Symbol))
		return nil

	case n.Left == nil || n.Right == nil:
		return compressor.Errorf(methodName, compressor.ErrStructure, "broken Huffman tree: node with frequency %d has a single child", n.Frequency)
	}

	buf.WriteByte(tagInternal)
	if err := n.Left.serializeTo(buf); err != nil {
		return err
	}
	return n.Right.serializeTo(buf)
}

// Deserialize rebuilds a tree written by Serialize.  Empty input yields a nil
// tree.  Bytes following a complete tree are ignored.
//
// Unknown tag bytes, a truncated tree, a node deeper than MaxDepth, or a
// symbol that is not valid UTF-8 fail with compressor.ErrFormat.
//
func Deserialize(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, nil
	}
	d := treeReader{data: data}
	return d.readNode(0)
}

type treeReader struct {
	data []byte
	pos  int
}

func (d *treeReader) readNode(depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, compressor.Errorf(methodName, compressor.ErrFormat, "error reading Huffman tree: deeper than %d levels at byte %d", MaxDepth, d.pos)
	}
	if d.pos >= len(d.data) {
		return nil, compressor.Errorf(methodName, compressor.ErrFormat, "error reading Huffman tree: truncated after %d bytes", d.pos)
	}

	tag := d.data[d.pos]
	d.pos++

	switch tag {
	case tagLeaf:
		ch, size := utf8.DecodeRune(d.data[d.pos:])
		if ch == utf8.RuneError && size <= 1 {
			return nil, compressor.Errorf(methodName, compressor.ErrFormat, "error reading Huffman tree: invalid symbol encoding at byte %d", d.pos)
		}
		d.pos += size
		return NewLeaf(Symbol(ch), 0), nil

	case tagInternal:
		left, err := d.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := d.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right), nil

	default:
		return nil, compressor.Errorf(methodName, compressor.ErrFormat, "error reading Huffman tree: unknown tag %#02x at byte %d", tag, d.pos-1)
	}
}
