package huffpack

import (
	"math"
)

// Symbol represents one byte value of the input alphabet.
type Symbol uint8

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1
