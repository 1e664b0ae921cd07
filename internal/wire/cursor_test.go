package wire

import (
	"testing"

	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.AppendU8(0xAB)
	w.AppendU16(0x1234)
	w.AppendU32(0xDEADBEEF)
	w.AppendF32(3.5)
	w.AppendASCII("hi")
	w.AppendLenPrefixedString("hello")

	c := NewCursor(w.Bytes())

	u8, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	u16, err := c.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := c.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	f32, err := c.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	ascii, err := c.ReadASCII(2)
	require.NoError(t, err)
	require.Equal(t, "hi", ascii)

	s, err := c.ReadLenPrefixedString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	require.Equal(t, 0, c.Remaining())
}

func TestCursor_ReadBeyondBufferReturnsErrTruncated(t *testing.T) {
	c := NewCursor([]byte{1, 2})

	_, err := c.ReadU32()
	require.ErrorIs(t, err, mvnerr.ErrTruncated)
}

func TestCursor_ReadBytesAliasesUnderlyingBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	c := NewCursor(buf)

	b, err := c.ReadBytes(4)
	require.NoError(t, err)
	b[0] = 0xFF
	require.Equal(t, byte(0xFF), buf[0])
}

func TestCursor_ReadLenPrefixedStringRejectsNegativeLength(t *testing.T) {
	w := NewWriter(0)
	w.AppendI32(-1)

	c := NewCursor(w.Bytes())
	_, err := c.ReadLenPrefixedString()
	require.ErrorIs(t, err, mvnerr.ErrTruncated)
}
