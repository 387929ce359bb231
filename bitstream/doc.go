// Package bitstream packs and unpacks ordered sequences of bits.
//
// Bits are packed most significant first.  When a stream is converted to
// bytes, the final byte is zero-padded on the low side, and the number of
// padding bits is reported so the reading side can slice them off again:
//
//   byte  0               1
//        +---------------+---------------+
//        |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|
//        +---------------+---------------+
//   bit   0 0 0 0 0 0 0 0 0 0 1 1 p p p p
//         0 1 2 3 4 5 6 7 8 9 0 1
//
// A Writer with 12 bits written has Padding() == 4.
//
package bitstream
