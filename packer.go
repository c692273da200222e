package huffpack

import (
	"bytes"

	"github.com/icza/bitio"
)

// Options tweaks how Compress builds its code table.
type Options struct {
	// Canonical replaces the tree-path codes with the canonical Huffman
	// code of the same lengths.
	Canonical bool
}

// Compress compresses data into a self-describing container using a Huffman
// code built from data's own byte frequencies.
//
// Returns ErrEmptyInput if data is empty.
//
func Compress(data []byte) ([]byte, error) {
	return CompressWith(data, Options{})
}

// CompressWith is Compress with options.
func CompressWith(data []byte, opts Options) ([]byte, error) {
	c, err := NewContainer(data, opts)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// NewContainer runs the compression pipeline on data and returns the
// unserialized result.
func NewContainer(data []byte, opts Options) (*Container, error) {
	table, err := NewCodeTable(CountFrequencies(data))
	if err != nil {
		return nil, err
	}
	if opts.Canonical {
		table = table.Canonical()
	}

	payload, pad, err := Pack(data, table)
	if err != nil {
		return nil, err
	}
	return &Container{Table: table, Pad: pad, Payload: payload}, nil
}

// Pack encodes each byte of data with its code from table, most significant
// bit first, and pads the result with 0 bits to a whole number of bytes.  It
// returns the packed bytes and the number of padding bits (0 .. 7).
//
// Returns a *MissingCodeError if some byte of data has no code in table.
//
func Pack(data []byte, table *CodeTable) (payload []byte, pad int, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLen uint64
	for offset, b := range data {
		hc, ok := table.Encode(Symbol(b))
		if !ok {
			return nil, 0, &MissingCodeError{Symbol: Symbol(b), Offset: offset}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, err
		}
		bitLen += uint64(hc.Size)
	}

	// Close writes out the cached partial byte, zero-filled.
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), padBits(bitLen), nil
}
