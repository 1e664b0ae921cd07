// Package pool provides a reusable byte-buffer pool, grounded on the
// teacher's internal/pool.ByteBufferPool: a sync.Pool of growable buffers
// with a size-capped Put to avoid retaining oversized buffers.
//
// The reassembler is the one place in the receive path that repeatedly
// needs a same-shaped scratch buffer (concatenating a frame's fragment
// payloads in order before handing them to the payload decoders), so this
// package exists to avoid a fresh allocation per completed frame.
package pool

import "sync"

// FragmentBufferDefaultSize is sized for a handful of MXTP fragments' worth
// of body-segment items; most frames fit in one allocation.
const (
	FragmentBufferDefaultSize = 4 * 1024  // 4KiB
	FragmentBufferMaxRetained = 64 * 1024 // 64KiB
)

// ByteBuffer is a growable byte slice wrapper reused across Reassembler.Push
// calls.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool pools ByteBuffers to minimize per-frame allocations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a ByteBufferPool whose buffers start at
// defaultSize and are discarded (not pooled) once they grow past
// maxThreshold, to avoid unbounded memory retention from one oversized
// frame.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it if it has
// grown beyond maxThreshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultFragmentPool = NewByteBufferPool(FragmentBufferDefaultSize, FragmentBufferMaxRetained)

// GetFragmentBuffer retrieves a ByteBuffer from the default fragment pool.
func GetFragmentBuffer() *ByteBuffer { return defaultFragmentPool.Get() }

// PutFragmentBuffer returns a ByteBuffer to the default fragment pool.
func PutFragmentBuffer(bb *ByteBuffer) { defaultFragmentPool.Put(bb) }
