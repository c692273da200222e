package huffpack

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// padBits returns the number of zero bits needed to bring n bits up to a
// whole number of bytes.
func padBits(n uint64) int {
	return int((8 - n%8) % 8)
}
