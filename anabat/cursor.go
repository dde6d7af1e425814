// SPDX-License-Identifier: EPL-2.0

package anabat

import "encoding/binary"

// Cursor reads little-endian values from a fixed byte buffer, either
// sequentially from its position or at an absolute offset. Reads past the
// end fail with a FormatError instead of panicking. Returned byte slices
// alias the buffer.
type Cursor struct {
	buf []byte
	pos int
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Len() int  { return len(c.buf) }
func (c *Cursor) Pos() int  { return c.pos }
func (c *Cursor) EOF() bool { return c.pos >= len(c.buf) }

// Seek moves to an absolute offset. Seeking to the end is allowed.
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.buf) {
		return truncatedAt(off)
	}
	c.pos = off
	return nil
}

// BytesAt returns n bytes at off without moving the cursor.
func (c *Cursor) BytesAt(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(c.buf) {
		return nil, truncatedAt(off)
	}
	return c.buf[off : off+n : off+n], nil
}

func (c *Cursor) ByteAt(off int) (byte, error) {
	b, err := c.BytesAt(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) Uint16At(off int) (uint16, error) {
	b, err := c.BytesAt(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Bytes returns the next n bytes and advances past them.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	b, err := c.BytesAt(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

func (c *Cursor) Byte() (byte, error) {
	b, err := c.ByteAt(c.pos)
	if err != nil {
		return 0, err
	}
	c.pos++
	return b, nil
}

func (c *Cursor) Uint16() (uint16, error) {
	v, err := c.Uint16At(c.pos)
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return v, nil
}
