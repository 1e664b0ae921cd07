// Package record implements the session-recording sink from SPEC_FULL.md's
// [MODULE sink/record]: every completed, decoded frame is appended to a
// session file as one compressed JSONL record. It is grounded on the
// teacher's compress package for the codec choice and internal/hash for
// duplicate suppression, re-homed from per-payload time-series
// compression to whole-session recording.
package record

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jiminghe/mvn-parser/internal/compress"
	"github.com/jiminghe/mvn-parser/internal/hash"
)

// Record is one JSONL line: a completed, decoded frame plus its
// reassembly provenance.
type Record struct {
	CharacterID   uint8  `json:"character_id"`
	SampleCounter uint32 `json:"sample_counter"`
	TimeCodeMs    uint32 `json:"time_code_ms"`
	MessageType   uint8  `json:"message_type"`
	Payload       any    `json:"payload"`
}

type dedupKey struct {
	characterID   uint8
	sampleCounter uint32
}

// Writer appends Records to an underlying stream as length-prefixed,
// individually compressed blocks, skipping a byte-identical repeat of the
// last frame seen for the same (character, sample) key (guards against an
// unusual sender re-emitting a sample counter after its prior frame was
// evicted from the reassembler; spec §8 invariant 3 already guarantees no
// duplicate from the reassembler itself).
type Writer struct {
	w        *bufio.Writer
	codec    compress.Codec
	lastSeen map[dedupKey]uint64
}

// NewWriter wraps w. A nil codec defaults to no compression.
func NewWriter(w io.Writer, codec compress.Codec) *Writer {
	if codec == nil {
		codec = compress.NoOpCodec{}
	}

	return &Writer{w: bufio.NewWriter(w), codec: codec, lastSeen: make(map[dedupKey]uint64)}
}

// WriteFrame marshals rec to JSON, compresses it, and appends it as one
// length-prefixed block. Returns (false, nil) without writing if rec is a
// byte-identical repeat of the last record written for its (character,
// sample) key.
func (rw *Writer) WriteFrame(rec Record) (written bool, err error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("record: marshal: %w", err)
	}

	key := dedupKey{characterID: rec.CharacterID, sampleCounter: rec.SampleCounter}
	id := hash.ID(body)
	if prev, ok := rw.lastSeen[key]; ok && prev == id {
		return false, nil
	}
	rw.lastSeen[key] = id

	compressed, err := rw.codec.Compress(body)
	if err != nil {
		return false, fmt.Errorf("record: compress: %w", err)
	}

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(compressed)))

	if _, err := rw.w.Write(lenPrefix[:]); err != nil {
		return false, err
	}
	if _, err := rw.w.Write(compressed); err != nil {
		return false, err
	}

	return true, nil
}

// Flush flushes any buffered output to the underlying writer.
func (rw *Writer) Flush() error { return rw.w.Flush() }
