// Package compressor defines the contract shared by the text compression
// methods in this module, plus the error taxonomy they report malformed input
// with.
//
// Two methods are provided:
//
//     github.com/chronos-tachyon/compressor/huffman   prefix-coded symbols, tree stored in the container
//
//     github.com/chronos-tachyon/compressor/lzw       adaptive dictionary, fixed 12-bit codes
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
//
package compressor
