package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/icza/bitio"
)

// Decoder implements a decoder for an arbitrary prefix-free CodeTable.
type Decoder struct {
	table   map[Code]decoderData
	count   int
	minSize byte
	maxSize byte
}

// NewDecoder builds a Decoder for the codes in t.
//
// Returns ErrNotPrefixFree if some code of t is a prefix of another.
//
func NewDecoder(t *CodeTable) (*Decoder, error) {
	if t.count == 0 {
		return nil, fmt.Errorf("huffpack: cannot decode with an empty code table")
	}

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := uint32(t.count) * log2uint32(uint32(t.count))

	d := &Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		count:   t.count,
		minSize: t.minSize,
		maxSize: t.maxSize,
	}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		if err := fillTable(d.table, Symbol(symbol), hc); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// CheckPrefixFree returns ErrNotPrefixFree if some code of t is a prefix of
// another code of t.
func (t *CodeTable) CheckPrefixFree() error {
	table := make(map[Code]decoderData, t.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := t.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		if err := fillTable(table, Symbol(symbol), hc); err != nil {
			return err
		}
	}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If hc is a complete code, ok is true and minSize == maxSize == hc.Size.
//
// If hc is a proper prefix of one or more codes, ok is false and at least
// (minSize - hc.Size) additional bits are required to decode a symbol.  No
// more than (maxSize - hc.Size) additional bits will be required.
//
// If hc is neither, ok is false and minSize == maxSize == 0.
//
func (d *Decoder) Decode(hc Code) (symbol Symbol, ok bool, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return 0, false, 0, 0
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize
}

// DecodeBits decodes the first bitLen bits of payload.
//
// Returns an error wrapping ErrCorrupt if the bits do not form a sequence
// of complete codes.
//
func (d *Decoder) DecodeBits(payload []byte, bitLen uint64) ([]byte, error) {
	if bitLen > uint64(len(payload))*8 {
		return nil, corruptf("bit length %d exceeds payload of %d bytes", bitLen, len(payload))
	}

	var out bytes.Buffer
	out.Grow(len(payload))

	r := bitio.NewReader(bytes.NewReader(payload))
	var pos uint64
	for pos < bitLen {
		start := pos
		hc := Code{}
		for {
			dd, found := d.table[hc]
			if !found {
				return nil, corruptf("invalid code %s at bit %d", hc, start)
			}
			if dd.leaf {
				out.WriteByte(byte(dd.symbol))
				break
			}

			// No code beneath hc is shorter than dd.minSize, so those
			// bits can be read in one go.
			need := uint64(dd.minSize - hc.Size)
			if pos+need > bitLen {
				return nil, corruptf("truncated code %s at bit %d", hc, start)
			}
			bits, err := r.ReadBits(uint8(need))
			if err != nil {
				return nil, corruptf("reading bit %d: %v", pos, err)
			}
			pos += need
			hc = MakeCode(dd.minSize, (hc.Bits<<need)|bits)
		}
	}
	return out.Bytes(), nil
}

// Len returns the number of symbols this Decoder can produce.
func (d *Decoder) Len() int {
	return d.count
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, dd.symbol)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decompress decodes a container produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(c.Table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return d.DecodeBits(c.Payload, c.BitLen())
}

type decoderData struct {
	symbol  Symbol
	leaf    bool
	minSize byte
	maxSize byte
}

// fillTable adds the code hc for symbol, plus an entry for every proper
// prefix of hc recording the shortest and longest codes beneath it.
func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) error {
	if _, found := table[hc]; found {
		return fmt.Errorf("code %s for symbol %d: %w", hc, symbol, ErrNotPrefixFree)
	}
	dd := decoderData{symbol: symbol, leaf: true, minSize: hc.Size, maxSize: hc.Size}
	table[hc] = dd

	prefix := hc
	for prefix.Size != 0 {
		// Mutate prefix from "xxx...a" to "xxx...".

		prefix = MakeCode(prefix.Size-1, prefix.Bits>>1)

		ddNew := decoderData{minSize: dd.minSize, maxSize: dd.maxSize}
		ddOld, found := table[prefix]
		if found {
			if ddOld.leaf {
				return fmt.Errorf("code %s for symbol %d is a prefix of code %s for symbol %d: %w", prefix, ddOld.symbol, hc, symbol, ErrNotPrefixFree)
			}
			if ddNew.minSize > ddOld.minSize {
				ddNew.minSize = ddOld.minSize
			}
			if ddNew.maxSize < ddOld.maxSize {
				ddNew.maxSize = ddOld.maxSize
			}
		}

		// Every prefix above is already up to date if this one was.

		if found && ddOld == ddNew {
			break
		}

		table[prefix] = ddNew
		dd = ddNew
	}
	return nil
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
