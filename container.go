package huffpack

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	headerDelimiter = ';'
	pairSeparator   = ','
	codeSeparator   = ':'

	// maxHeaderLengthDigits bounds the header length field.  256 pairs of
	// "255:" plus a 64-bit code and a comma fit comfortably in 6 digits.
	maxHeaderLengthDigits = 6
)

// Container is the decoded form of a compressed container.
type Container struct {
	// Table holds the code for every symbol of the original data.
	Table *CodeTable

	// Pad is the number of zero bits at the end of Payload that encode
	// nothing.
	Pad int

	// Payload holds the packed codes.
	Payload []byte
}

// BitLen returns the number of meaningful bits in the payload.
func (c *Container) BitLen() uint64 {
	n := uint64(len(c.Payload)) * 8
	if uint64(c.Pad) > n {
		return 0
	}
	return n - uint64(c.Pad)
}

// Header returns the textual code table that leads the container.
func (c *Container) Header() string {
	return FormatHeader(c.Table)
}

// Len returns the length of the serialized container.
func (c *Container) Len() int {
	header := c.Header()
	return len(strconv.Itoa(len(header))) + 1 + len(header) + 1 + len(c.Payload)
}

// MarshalBinary serializes the container:
//
//     <len(header)> ';' <header> <pad byte> <payload>
//
func (c *Container) MarshalBinary() ([]byte, error) {
	header := c.Header()
	prefix := strconv.Itoa(len(header))

	out := make([]byte, 0, len(prefix)+1+len(header)+1+len(c.Payload))
	out = append(out, prefix...)
	out = append(out, headerDelimiter)
	out = append(out, header...)
	out = append(out, byte(c.Pad))
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary parses a serialized container.  Payload aliases data.
func (c *Container) UnmarshalBinary(data []byte) error {
	index := bytes.IndexByte(data, headerDelimiter)
	if index < 0 {
		return corruptf("missing %q after header length", headerDelimiter)
	}
	if index == 0 || index > maxHeaderLengthDigits {
		return corruptf("bad header length field %q", data[:index])
	}
	headerLen, ok := parseDecimal(string(data[:index]))
	if !ok {
		return corruptf("bad header length field %q", data[:index])
	}

	rest := data[index+1:]
	if headerLen+1 > len(rest) {
		return corruptf("header length %d exceeds remaining %d bytes", headerLen, len(rest))
	}

	table, err := ParseHeader(string(rest[:headerLen]))
	if err != nil {
		return err
	}

	pad := int(rest[headerLen])
	payload := rest[headerLen+1:]
	if pad > 7 {
		return corruptf("padding %d out of range", pad)
	}
	if pad != 0 && len(payload) == 0 {
		return corruptf("padding %d with empty payload", pad)
	}
	if pad != 0 {
		mask := byte(1)<<pad - 1
		if tail := payload[len(payload)-1] & mask; tail != 0 {
			return corruptf("padding bits %0*b are not zero", pad, tail)
		}
	}

	*c = Container{Table: table, Pad: pad, Payload: payload}
	return nil
}

// ParseContainer parses a serialized container.
func ParseContainer(data []byte) (*Container, error) {
	c := &Container{}
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

// FormatHeader serializes table as comma-separated "<symbol>:<code>" pairs in
// ascending symbol order.
func FormatHeader(table *CodeTable) string {
	var sb strings.Builder
	for i, symbol := range table.Symbols() {
		if i != 0 {
			sb.WriteByte(pairSeparator)
		}
		sb.WriteString(strconv.Itoa(int(symbol)))
		sb.WriteByte(codeSeparator)
		sb.WriteString(table.codes[symbol].BitString())
	}
	return sb.String()
}

// ParseHeader parses the output of FormatHeader.  Pairs may appear in any
// order, but each symbol may appear only once, and the codes must be
// prefix-free.
func ParseHeader(header string) (*CodeTable, error) {
	if header == "" {
		return nil, corruptf("empty header")
	}

	t := &CodeTable{}
	for _, pair := range strings.Split(header, string(pairSeparator)) {
		index := strings.IndexByte(pair, codeSeparator)
		if index < 0 {
			return nil, corruptf("header pair %q lacks %q", pair, codeSeparator)
		}

		symbol, ok := parseDecimal(pair[:index])
		if !ok || symbol > int(MaxSymbol) {
			return nil, corruptf("header pair %q: bad symbol", pair)
		}
		if t.codes[symbol].Size != 0 {
			return nil, corruptf("header pair %q: duplicate symbol %d", pair, symbol)
		}

		hc, err := ParseCode(pair[index+1:])
		if err != nil {
			return nil, corruptf("header pair %q: %v", pair, err)
		}
		t.set(Symbol(symbol), hc)
	}

	if err := t.CheckPrefixFree(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return t, nil
}

// parseDecimal parses a non-negative decimal number written the way
// strconv.Itoa writes it: digits only, and no leading zeros.
func parseDecimal(str string) (int, bool) {
	if str == "" || len(str) > maxHeaderLengthDigits {
		return 0, false
	}
	if len(str) > 1 && str[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}
