package huffpack

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) == 0 {
		return Code{}, fmt.Errorf("empty code")
	}
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q: %w", str, ErrCodeTooLong)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q: invalid character %q at index %d", str, str[i], i)
		}
	}
	return hc, nil
}

// Append returns this Code with one more bit added at the end.
func (hc Code) Append(bit uint64) Code {
	return MakeCode(hc.Size+1, (hc.Bits<<1)|(bit&1))
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// BitString returns the bits of this Code as '0' and '1' characters, first
// bit first.  This is the form used in container headers.
func (hc Code) BitString() string {
	if hc.Size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.BitString())
}

var _ fmt.Stringer = Code{}
