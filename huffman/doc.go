// Package huffman implements a Huffman coder for text.
//
// The coder counts symbol frequencies over the whole input, builds a prefix
// code tree, and stores the tree alongside the coded bits so that the
// decompressor can rebuild it.  The container layout is:
//
//     offset 0..8                 padding bit count, uint64 big-endian
//     offset 8..16                serialized tree length, uint64 big-endian
//     offset 16..16+treeLen       serialized tree
//     offset 16+treeLen..         coded bits, zero-padded to a byte boundary
//
// The tree is serialized in preorder: an internal node is the byte '0'
// followed by its left and right subtrees, and a leaf is the byte '1'
// followed by its symbol in UTF-8.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
