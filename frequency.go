package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol in some
// input, along with the order in which the symbols were first seen.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	order  []Symbol
	total  uint64
}

// CountFrequencies counts every byte of data.  An empty data yields an empty
// table.
func CountFrequencies(data []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	for _, b := range data {
		ft.Add(Symbol(b))
	}
	return ft
}

// Add records one more occurrence of symbol.
func (ft *FrequencyTable) Add(symbol Symbol) {
	if ft.counts[symbol] == 0 {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol]++
	ft.total++
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols seen.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in first-seen order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
