package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents one character of the input text.  Negative symbols are
// not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is held by internal tree nodes, which carry no symbol of their
// own.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted character, e.g. 'a'.
func (sym Symbol) String() string {
	if sym < 0 || sym > MaxSymbol {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(sym))
}
