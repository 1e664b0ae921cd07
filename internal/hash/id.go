// Package hash provides a fast content hash used to fingerprint completed
// frames, grounded on the teacher's internal/hash.ID (xxHash64 over a
// string key).
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FrameID computes a stable identity for a completed frame's reassembled
// payload bytes, scoped by character and sample counter. sink/record does
// not call it: its duplicate check hashes the marshalled record with ID and
// keys the result by (character, sample) itself.
func FrameID(characterID uint8, sampleCounter uint32, payload []byte) uint64 {
	var prefix [5]byte
	prefix[0] = characterID
	prefix[1] = byte(sampleCounter >> 24)
	prefix[2] = byte(sampleCounter >> 16)
	prefix[3] = byte(sampleCounter >> 8)
	prefix[4] = byte(sampleCounter)

	d := xxhash.New()
	_, _ = d.Write(prefix[:])
	_, _ = d.Write(payload)

	return d.Sum64()
}
