package record

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jiminghe/mvn-parser/internal/compress"
)

// maxBlockSize bounds a single compressed block's declared length. A
// genuine recorded frame is a handful of kilobytes at most; this rejects a
// corrupted or truncated length prefix before it drives a multi-gigabyte
// allocation.
const maxBlockSize = 64 << 20 // 64 MiB

// Reader reads Records back out of a stream written by Writer.
type Reader struct {
	r     *bufio.Reader
	codec compress.Codec
}

// NewReader wraps r. codec must match the one used to write the stream.
// A nil codec defaults to no compression.
func NewReader(r io.Reader, codec compress.Codec) *Reader {
	if codec == nil {
		codec = compress.NoOpCodec{}
	}

	return &Reader{r: bufio.NewReader(r), codec: codec}
}

// ReadFrame reads and decodes the next Record, returning io.EOF once the
// stream is exhausted cleanly between records.
func (rr *Reader) ReadFrame() (Record, error) {
	var rec Record

	var lenPrefix [4]byte
	if _, err := io.ReadFull(rr.r, lenPrefix[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return rec, fmt.Errorf("record: truncated length prefix: %w", err)
		}

		return rec, err
	}

	n := binary.BigEndian.Uint32(lenPrefix[:])
	if n > maxBlockSize {
		return rec, fmt.Errorf("record: block length %d exceeds max %d", n, maxBlockSize)
	}
	compressed := make([]byte, n)
	if _, err := io.ReadFull(rr.r, compressed); err != nil {
		return rec, fmt.Errorf("record: truncated block: %w", err)
	}

	body, err := rr.codec.Decompress(compressed)
	if err != nil {
		return rec, fmt.Errorf("record: decompress: %w", err)
	}

	if err := json.Unmarshal(body, &rec); err != nil {
		return rec, fmt.Errorf("record: unmarshal: %w", err)
	}

	return rec, nil
}
