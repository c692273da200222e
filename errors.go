package huffpack

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when asked to compress zero bytes.  There are no
// frequencies to build a tree from, so no container is produced.
var ErrEmptyInput = errors.New("huffpack: empty input")

// ErrMissingCode is matched by *MissingCodeError via errors.Is.
var ErrMissingCode = errors.New("huffpack: symbol has no code")

// ErrCodeTooLong is returned when a code would exceed MaxCodeSize bits.
var ErrCodeTooLong = errors.New("huffpack: code too long")

// ErrNotPrefixFree is returned when a code table contains a code that is a
// prefix of another code, or the same code twice.
var ErrNotPrefixFree = errors.New("huffpack: code table is not prefix-free")

// ErrCorrupt is wrapped by every error that reports a malformed container.
var ErrCorrupt = errors.New("huffpack: corrupt container")

// MissingCodeError reports an input byte that has no entry in the CodeTable
// used to pack it.
type MissingCodeError struct {
	Symbol Symbol
	Offset int
}

func (err *MissingCodeError) Error() string {
	return fmt.Sprintf("huffpack: symbol %d at offset %d has no code", err.Symbol, err.Offset)
}

// Is makes errors.Is(err, ErrMissingCode) succeed.
func (err *MissingCodeError) Is(target error) bool {
	return target == ErrMissingCode
}

var _ error = (*MissingCodeError)(nil)

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
