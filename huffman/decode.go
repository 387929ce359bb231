package huffman

import (
	"io"
	"strings"

	"github.com/chronos-tachyon/compressor"
	"github.com/chronos-tachyon/compressor/bitstream"
)

// Decode walks the tree once per coded symbol, consuming one bit per step: 0
// selects the left child and 1 the right child.  Each leaf reached appends its
// symbol to the output and restarts the walk at the root.  A tree that is a
// single leaf yields its symbol once per bit.
//
// A bit that steps to a missing child, or a stream that ends partway through
// a code, fails with compressor.ErrDecode.
//
func (n *Node) Decode(r *bitstream.Reader) (string, error) {
	if n == nil {
		if r.Remaining() != 0 {
			return "", compressor.Errorf(methodName, compressor.ErrDecode, "%d coded bits but no tree", r.Remaining())
		}
		return "", nil
	}

	var out strings.Builder

	if n.IsLeaf() {
		for {
			if _, err := r.ReadBit(); err == io.EOF {
				break
			}
			out.WriteRune(rune(n.Symbol))
		}
		return out.String(), nil
	}

	cur := n
	for {
		set, err := r.ReadBit()
		if err == io.EOF {
			break
		}

		next := cur.Left
		if set {
			next = cur.Right
		}
		if next == nil {
			index := r.Len() - r.Remaining() - 1
			return "", compressor.Errorf(methodName, compressor.ErrDecode, "bit %d steps past a missing child", index)
		}

		cur = next
		if cur.IsLeaf() {
			out.WriteRune(rune(cur.Symbol))
			cur = n
		}
	}

	if cur != n {
		return "", compressor.Errorf(methodName, compressor.ErrDecode, "coded bits end in the middle of a code")
	}
	return out.String(), nil
}
