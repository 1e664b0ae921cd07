package wire

import "math"

// Writer appends big-endian fields to a growable byte slice. It exists for
// the round-trip encoders (payload types that define an inverse Encode) and
// for test fixtures; the receive path never writes to the wire.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// AppendU8 appends one byte.
func (w *Writer) AppendU8(v uint8) { w.buf = append(w.buf, v) }

// AppendU16 appends a big-endian uint16.
func (w *Writer) AppendU16(v uint16) {
	w.buf = append(w.buf, byte(v>>8), byte(v))
}

// AppendU32 appends a big-endian uint32.
func (w *Writer) AppendU32(v uint32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendI32 appends a big-endian int32.
func (w *Writer) AppendI32(v int32) { w.AppendU32(uint32(v)) }

// AppendF32 appends a big-endian IEEE-754 single-precision float.
func (w *Writer) AppendF32(v float32) { w.AppendU32(math.Float32bits(v)) }

// AppendBytes appends raw bytes verbatim.
func (w *Writer) AppendBytes(b []byte) { w.buf = append(w.buf, b...) }

// AppendASCII appends the bytes of s verbatim (no length prefix).
func (w *Writer) AppendASCII(s string) { w.buf = append(w.buf, s...) }

// AppendLenPrefixedString appends a big-endian int32 length prefix followed
// by the UTF-8 bytes of s.
func (w *Writer) AppendLenPrefixedString(s string) {
	w.AppendI32(int32(len(s)))
	w.AppendASCII(s)
}
