package huffpack

import (
	"sort"
)

// Canonical returns a new CodeTable holding the canonical Huffman code with
// the same bit length for every symbol as this one.  The canonical code is
// fully determined by the lengths, which makes it independent of how ties
// were broken while building the tree.
func (t *CodeTable) Canonical() *CodeTable {
	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize, 0, t.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		sorted = append(sorted, symbolAndSize{Symbol(symbol), hc.Size})
	}
	sorted.Sort()

	out := &CodeTable{}
	if len(sorted) == 0 {
		return out
	}

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		out.set(item.symbol, MakeCode(item.size, nextCode))
		nextCode++
	}
	return out
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
