// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"errors"
	"fmt"

	"github.com/ik5/batzc/zc"
)

var (
	ErrTruncated        = errors.New("truncated Anabat data")
	ErrUnknownByte      = errors.New("unknown byte in sequence data")
	ErrInvalidTimestamp = errors.New("invalid Anabat timestamp")
	ErrAmplitudeCount   = errors.New("embedded amplitude count does not match dot count")

	ErrHeaderWritten = errors.New("anabat header already written")
	ErrHeaderMissing = errors.New("anabat header must be written before intervals")
	ErrWriterClosed  = errors.New("anabat writer is closed")
	ErrBlockTooLarge = errors.New("embedded metadata block too large")
)

// FormatError reports structurally invalid Anabat data at a byte offset.
// It matches both its sentinel and zc.ErrFormat with errors.Is.
type FormatError struct {
	Offset int
	// Byte is the offending byte value, or -1 when not applicable.
	Byte int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Byte >= 0 {
		return fmt.Sprintf("anabat: %v 0x%X at offset 0x%X", e.Err, e.Byte, e.Offset)
	}
	return fmt.Sprintf("anabat: %v at offset 0x%X", e.Err, e.Offset)
}

func (e *FormatError) Unwrap() []error { return []error{e.Err, zc.ErrFormat} }

func truncatedAt(off int) error {
	return &FormatError{Offset: off, Byte: -1, Err: ErrTruncated}
}
