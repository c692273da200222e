package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Huffman code.  Symbols without a code
// have a zero-sized entry.
type CodeTable struct {
	codes   [NumSymbols]Code
	count   int
	minSize byte
	maxSize byte
}

// NewCodeTable builds the Huffman tree for ft and assigns codes from it.
func NewCodeTable(ft *FrequencyTable) (*CodeTable, error) {
	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	return AssignCodes(root)
}

// AssignCodes walks the tree rooted at root and gives every leaf the code
// spelled by its path from the root, 0 for left and 1 for right.
//
// A tree consisting of a single leaf has no path to speak of; that leaf is
// given the one-bit code "0" so that every symbol still costs at least one
// bit in the payload.
//
// Returns ErrCodeTooLong if the tree is deeper than MaxCodeSize.
//
func AssignCodes(root *Node) (*CodeTable, error) {
	assert.Assert(root != nil, "root is nil")

	t := &CodeTable{}
	if root.IsLeaf() {
		t.set(root.Symbol, MakeCode(1, 0))
		return t, nil
	}

	// We walk the tree with an explicit stack of internal nodes, so that
	// a badly skewed tree can't blow up the goroutine stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(child *Node, code Code) error {
		if code.Size > MaxCodeSize {
			return fmt.Errorf("symbol tree depth exceeds %d: %w", MaxCodeSize, ErrCodeTooLong)
		}
		if child.IsLeaf() {
			assert.Assertf(t.codes[child.Symbol].Size == 0, "symbol %d appears twice in tree", child.Symbol)
			t.set(child.Symbol, code)
			return nil
		}
		stack = append(stack, stackItem{node: child, code: code})
		return nil
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var err error
		switch x {
		case 0:
			err = processChild(top.node.Left, top.code.Append(0))
		case 1:
			err = processChild(top.node.Right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *CodeTable) set(symbol Symbol, hc Code) {
	if t.codes[symbol].Size == 0 {
		t.count++
	}
	t.codes[symbol] = hc
	if t.count == 1 {
		t.minSize, t.maxSize = hc.Size, hc.Size
		return
	}
	if t.minSize > hc.Size {
		t.minSize = hc.Size
	}
	if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
}

// Encode returns the code for symbol.  The second return value is false if
// symbol has no code.
func (t *CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc := t.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols that have a code.
func (t *CodeTable) Len() int {
	return t.count
}

// Symbols returns the symbols that have a code, in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, t.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.codes[symbol].Size != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (t *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		out[symbol] = t.codes[symbol].Size
	}
	return out
}

// WeightedSize returns the number of payload bits needed to encode an input
// with the given frequencies, before padding.
func (t *CodeTable) WeightedSize(ft *FrequencyTable) uint64 {
	var sum uint64
	for _, symbol := range ft.order {
		sum += ft.counts[symbol] * uint64(t.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.count)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
