package huffman

import (
	"sort"
)

// Frequency is the number of occurrences of one Symbol.
type Frequency struct {
	Symbol Symbol
	Count  uint64
}

// Frequencies lists the symbols of a text with their occurrence counts.
type Frequencies []Frequency

// CountFrequencies counts every symbol of text.  The result is sorted by
// descending count, then by ascending symbol.
func CountFrequencies(text string) Frequencies {
	counts := make(map[Symbol]uint64)
	for _, ch := range text {
		counts[Symbol(ch)]++
	}

	list := make(Frequencies, 0, len(counts))
	for symbol, count := range counts {
		list = append(list, Frequency{symbol, count})
	}
	list.Sort()
	return list
}

// Total returns the sum of all counts.
func (list Frequencies) Total() uint64 {
	var sum uint64
	for _, f := range list {
		sum += f.Count
	}
	return sum
}

// type Frequencies sort.Interface {{{

func (list Frequencies) Sort() {
	sort.Sort(list)
}

func (list Frequencies) Len() int {
	return len(list)
}

func (list Frequencies) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list Frequencies) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = Frequencies(nil)

// }}}
