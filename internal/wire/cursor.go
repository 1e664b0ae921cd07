// Package wire provides bounds-checked big-endian primitives for reading the
// MXTP datagram wire format.
//
// Every read method fails closed: if the buffer does not hold enough bytes
// for the requested field, the cursor returns mvnerr.ErrTruncated rather than
// panicking or reading past the declared payload. No method trusts a
// declared length without checking it against the remaining buffer first.
package wire

import (
	"math"

	"github.com/jiminghe/mvn-parser/mvnerr"
)

// Cursor reads fixed-width big-endian fields from an immutable byte slice.
//
// Cursor is not safe for concurrent use; callers decoding multiple
// datagrams concurrently should use one Cursor per goroutine.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// require checks that n more bytes are available, advancing is the caller's
// responsibility after a successful check.
func (c *Cursor) require(n int) error {
	if n < 0 || c.Remaining() < n {
		return mvnerr.ErrTruncated
	}

	return nil
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++

	return v, nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := uint16(c.buf[c.pos])<<8 | uint16(c.buf[c.pos+1])
	c.pos += 2

	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := uint32(c.buf[c.pos])<<24 | uint32(c.buf[c.pos+1])<<16 |
		uint32(c.buf[c.pos+2])<<8 | uint32(c.buf[c.pos+3])
	c.pos += 4

	return v, nil
}

// ReadI32 reads a big-endian two's-complement int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadF32 reads a big-endian IEEE-754 single-precision float.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadBytes returns a slice of the next n bytes. The slice aliases the
// cursor's underlying buffer; callers that retain it beyond the lifetime of
// the source datagram must copy it.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n

	return v, nil
}

// ReadASCII reads n bytes and returns them as a string, without validating
// that the bytes are printable ASCII; callers that need the strict header
// magic/type check perform that validation themselves.
func (c *Cursor) ReadASCII(n int) (string, error) {
	b, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadLenPrefixedString reads a big-endian int32 length prefix L followed by
// L bytes of UTF-8 text. L must be non-negative and fit the remaining
// buffer; the string is not null-terminated.
func (c *Cursor) ReadLenPrefixedString() (string, error) {
	l, err := c.ReadI32()
	if err != nil {
		return "", err
	}
	if l < 0 {
		return "", mvnerr.ErrTruncated
	}

	b, err := c.ReadBytes(int(l))
	if err != nil {
		return "", err
	}

	return string(b), nil
}
