package colorconv

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall is returned by the FromBytes constructors when the
	// input holds fewer bytes than the color needs.
	ErrBufferTooSmall = errors.New("colorconv: buffer too small")

	// ErrInvalidHex is returned by ParseHex for malformed input.
	ErrInvalidHex = errors.New("colorconv: invalid hex color")
)

// checkLen reports ErrBufferTooSmall, annotated with both lengths, when b is
// shorter than need.
func checkLen(b []byte, need int) error {
	if len(b) < need {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrBufferTooSmall, need, len(b))
	}
	return nil
}
