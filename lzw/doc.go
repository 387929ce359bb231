// Package lzw implements a Lempel-Ziv-Welch coder for text.
//
// The dictionary is seeded with the 256 single-symbol sequences of the
// ISO-8859-1 (Latin-1) alphabet, so text is transcoded to Latin-1 before
// coding and back to UTF-8 after decoding.  Codes are a fixed 12 bits wide,
// and the dictionary stops growing at 4096 entries.
//
// The container layout is:
//
//     offset 0      padding bit count, uint8
//     offset 1..    12-bit big-endian codes, zero-padded to a byte boundary
//
// References:
//
//     <https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
//
package lzw
