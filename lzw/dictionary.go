package lzw

const (
	// CodeWidth is the number of bits in every code.
	CodeWidth = 12

	// MaxTableSize is the number of entries at which the dictionary stops
	// growing.
	MaxTableSize = 1 << CodeWidth

	// SeedSize is the number of single-symbol entries the dictionary
	// starts with.
	SeedSize = 256
)

// Code is an index into the dictionary.
type Code uint16

// Dictionary maps symbol sequences to codes on the compressing side.
type Dictionary struct {
	codes map[string]Code
	next  Code
}

// NewDictionary returns a Dictionary holding the SeedSize single-symbol
// entries.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		codes: make(map[string]Code, MaxTableSize),
		next:  SeedSize,
	}
	for i := 0; i < SeedSize; i++ {
		d.codes[string([]byte{byte(i)})] = Code(i)
	}
	return d
}

// Lookup returns the code for seq, if present.
func (d *Dictionary) Lookup(seq []byte) (Code, bool) {
	code, found := d.codes[string(seq)]
	return code, found
}

// Add inserts seq at the next free code.  It returns false, and inserts
// nothing, once the dictionary holds MaxTableSize entries.
func (d *Dictionary) Add(seq []byte) bool {
	if d.Len() >= MaxTableSize {
		return false
	}
	d.codes[string(seq)] = d.next
	d.next++
	return true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return int(d.next)
}

// Mirror maps codes back to symbol sequences on the decompressing side.  It
// grows in the same order as the Dictionary that produced the codes, without
// ever seeing it.
type Mirror struct {
	entries [][]byte
}

// NewMirror returns a Mirror holding the SeedSize single-symbol entries.
func NewMirror() *Mirror {
	m := &Mirror{entries: make([][]byte, SeedSize, MaxTableSize)}
	for i := 0; i < SeedSize; i++ {
		m.entries[i] = []byte{byte(i)}
	}
	return m
}

// Lookup returns the sequence for code, if present.
func (m *Mirror) Lookup(code Code) ([]byte, bool) {
	if int(code) >= len(m.entries) {
		return nil, false
	}
	return m.entries[code], true
}

// Add inserts seq at the next free code.  It returns false, and inserts
// nothing, once the mirror holds MaxTableSize entries.
func (m *Mirror) Add(seq []byte) bool {
	if len(m.entries) >= MaxTableSize {
		return false
	}
	m.entries = append(m.entries, seq)
	return true
}

// NextCode returns the code the next Add would assign.
func (m *Mirror) NextCode() Code {
	return Code(len(m.entries))
}
