package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// Node is a node of a Huffman code tree.  A leaf holds exactly one Symbol and
// no children; an internal node holds InvalidSymbol and exactly two children.
type Node struct {
	// Symbol is the symbol of a leaf, or InvalidSymbol.
	Symbol Symbol

	// Frequency is the leaf's occurrence count, or the sum of the
	// children's frequencies.  Trees rebuilt by Deserialize carry zero.
	Frequency uint64

	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Frequency: freq}
}

// NewInternal constructs an internal Node over two subtrees.
func NewInternal(left *Node, right *Node) *Node {
	return &Node{
		Symbol:    InvalidSymbol,
		Frequency: saturatingAdd(frequencyOf(left), frequencyOf(right)),
		Left:      left,
		Right:     right,
	}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs a Huffman tree from a frequency list and returns its root,
// or nil if the list is empty.
//
// A min-heap ordered by frequency holds one leaf per entry.  The two lowest
// nodes are popped repeatedly and replaced by an internal node with the first
// popped as its left child and the second as its right child.  Nodes of equal
// frequency leave the heap in the order they entered it: leaves in list order,
// then internal nodes in order of creation.
//
func Build(freqs Frequencies) *Node {
	if len(freqs) == 0 {
		return nil
	}

	h := binaryheap.NewWith(byFrequencyThenSeq)
	var seq uint64
	for _, f := range freqs {
		h.Push(queuedNode{NewLeaf(f.Symbol, f.Count), seq})
		seq++
	}

	for h.Size() > 1 {
		a := popNode(h)
		b := popNode(h)
		h.Push(queuedNode{NewInternal(a, b), seq})
		seq++
	}

	return popNode(h)
}

// Codes derives the code table by one traversal of the tree: a step to the
// left appends bit 0 and a step to the right appends bit 1.  A tree that is a
// single leaf assigns that leaf the one-bit code "1".
func (n *Node) Codes() CodeTable {
	table := make(CodeTable)
	if n == nil {
		return table
	}
	if n.IsLeaf() {
		table[n.Symbol] = MakeCode(1, 1)
		return table
	}
	n.assignCodes(table, Code{})
	return table
}

func (n *Node) assignCodes(table CodeTable, prefix Code) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		table[n.Symbol] = prefix
		return
	}
	n.Left.assignCodes(table, prefix.Append(false))
	n.Right.assignCodes(table, prefix.Append(true))
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Nodes are listed in preorder, keyed by their path from the root.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dumpTo(&buf, nil)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dumpTo(buf *bytes.Buffer, path []byte) {
	if n == nil {
		return
	}
	label := "internal"
	if n.IsLeaf() {
		label = n.Symbol.String()
	}
	fmt.Fprintf(buf, "\tNode(%s) = {%s, %d}\n", strconv.Quote(string(path)), label, n.Frequency)
	n.Left.dumpTo(buf, append(path, '0'))
	n.Right.dumpTo(buf, append(path, '1'))
}

// CodeTable maps each Symbol of a tree to its Code.
type CodeTable map[Symbol]Code

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, sorted by symbol.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	symbols := make([]Symbol, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type queuedNode + heap helpers {{{

type queuedNode struct {
	node *Node
	seq  uint64
}

func byFrequencyThenSeq(a, b interface{}) int {
	x, y := a.(queuedNode), b.(queuedNode)
	switch {
	case x.node.Frequency < y.node.Frequency:
		return -1
	case x.node.Frequency > y.node.Frequency:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

func popNode(h *binaryheap.Heap) *Node {
	value, ok := h.Pop()
	if !ok {
		panic("BUG: pop from empty heap")
	}
	return value.(queuedNode).node
}

// }}}

func frequencyOf(n *Node) uint64 {
	if n == nil {
		return 0
	}
	return n.Frequency
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
