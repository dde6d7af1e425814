// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"errors"
	"testing"

	"github.com/ik5/batzc/zc"
)

func TestCursor_Sequential(t *testing.T) {
	t.Parallel()

	c := NewCursor([]byte{0x1a, 0x01, 0x84, 0xAA, 0xBB, 0xCC})

	v, err := c.Uint16()
	if err != nil || v != 0x011a {
		t.Fatalf("Uint16() = 0x%x, %v; want 0x011a", v, err)
	}
	b, err := c.Byte()
	if err != nil || b != 0x84 {
		t.Fatalf("Byte() = 0x%x, %v; want 0x84", b, err)
	}
	rest, err := c.Bytes(3)
	if err != nil || len(rest) != 3 || rest[2] != 0xCC {
		t.Fatalf("Bytes(3) = %x, %v", rest, err)
	}
	if !c.EOF() || c.Pos() != 6 {
		t.Errorf("EOF() = %v, Pos() = %d; want true, 6", c.EOF(), c.Pos())
	}
}

func TestCursor_OutOfBounds(t *testing.T) {
	t.Parallel()

	c := NewCursor([]byte{1, 2, 3})

	tests := []struct {
		name string
		fn   func() error
	}{
		{"Uint16At end", func() error { _, err := c.Uint16At(2); return err }},
		{"ByteAt past end", func() error { _, err := c.ByteAt(3); return err }},
		{"BytesAt negative", func() error { _, err := c.BytesAt(-1, 1); return err }},
		{"Seek past end", func() error { return c.Seek(4) }},
	}

	for _, tt := range tests {
		err := tt.fn()
		if !errors.Is(err, ErrTruncated) || !errors.Is(err, zc.ErrFormat) {
			t.Errorf("%s: error = %v, want ErrTruncated format error", tt.name, err)
		}
	}

	if err := c.Seek(3); err != nil {
		t.Errorf("Seek(len) error = %v, want nil", err)
	}
	if _, err := c.Byte(); !errors.Is(err, ErrTruncated) {
		t.Errorf("Byte() at EOF error = %v, want ErrTruncated", err)
	}
}

func TestFormatError_Message(t *testing.T) {
	t.Parallel()

	err := &FormatError{Offset: 0x151, Byte: 0xFA, Err: ErrUnknownByte}
	want := "anabat: unknown byte in sequence data 0xFA at offset 0x151"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var fe *FormatError
	if !errors.As(truncatedAt(7), &fe) || fe.Offset != 7 || fe.Byte != -1 {
		t.Errorf("truncatedAt(7) = %+v", fe)
	}
}
