package reassemble

import (
	"container/list"
	"errors"

	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/internal/pool"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
	"github.com/jiminghe/mvn-parser/telemetry"
)

// partial is the accumulating state for one (character, sample) key.
type partial struct {
	key          FragmentKey
	header       mvntp.Header
	haveHeader   bool
	fragments    map[uint8][]byte
	highestIndex uint8
	sawLast      bool
	firstSeenMs  int64
}

func (p *partial) isComplete() bool {
	if !p.sawLast {
		return false
	}
	for i := uint8(0); i <= p.highestIndex; i++ {
		if _, ok := p.fragments[i]; !ok {
			return false
		}
	}

	return true
}

// concatenate assembles the frame's payload in ascending fragment-index
// order, using bufs as scratch space (returned to the pool before this
// function returns) and copying the result into a right-sized, caller-owned
// slice.
func (p *partial) concatenate(bufs *pool.ByteBufferPool) []byte {
	scratch := bufs.Get()
	for i := uint8(0); i <= p.highestIndex; i++ {
		scratch.Write(p.fragments[i])
	}

	out := make([]byte, len(scratch.Bytes()))
	copy(out, scratch.Bytes())
	bufs.Put(scratch)

	return out
}

// headerConsistent reports whether a and b could be fragments of the same
// sampling instance (spec §4.4 cross-fragment consistency).
func headerConsistent(a, b mvntp.Header) bool {
	return a.MessageType == b.MessageType &&
		a.BodySegmentCount == b.BodySegmentCount &&
		a.PropCount == b.PropCount &&
		a.FingerSegmentCount == b.FingerSegmentCount
}

// characterState holds the in-flight partials for one character, ordered
// oldest-to-newest for LRU eviction.
type characterState struct {
	order *list.List // Value: *partial
	index map[uint32]*list.Element
}

func newCharacterState() *characterState {
	return &characterState{order: list.New(), index: make(map[uint32]*list.Element)}
}

// Reassembler implements the spec §4.4 per-(character, sample) state
// machine. It is not safe for concurrent use (spec §5): the transport owns
// the single-threaded call-in loop.
type Reassembler struct {
	cfg   config.ReassemblerConfig
	chars map[uint8]*characterState
	sink  telemetry.Sink
	bufs  *pool.ByteBufferPool
}

// New creates a Reassembler. A nil sink is replaced with telemetry.NopSink.
func New(cfg config.ReassemblerConfig, sink telemetry.Sink) *Reassembler {
	if sink == nil {
		sink = telemetry.NopSink{}
	}

	return &Reassembler{
		cfg:   cfg,
		chars: make(map[uint8]*characterState),
		sink:  sink,
		bufs:  pool.NewByteBufferPool(pool.FragmentBufferDefaultSize, pool.FragmentBufferMaxRetained),
	}
}

// Push decodes one datagram's header and, if it completes a sampling
// instance (possibly on the single-fragment fast path), returns the
// completed frame(s). It never returns an error: malformed or unrecognized
// datagrams are reported via telemetry and dropped (spec §7 propagation
// policy — no error aborts the receiver).
func (r *Reassembler) Push(buf []byte, nowMs int64) []CompletedFrame {
	h, err := mvntp.DecodeHeader(buf, r.cfg.Decode)
	if err != nil {
		if errors.Is(err, mvnerr.ErrBadMagic) && !r.cfg.Decode.StrictMagic {
			// Non-MXTP datagrams are skipped silently when StrictMagic is off.
			return nil
		}
		r.sink.OnEvent(telemetry.Event{Kind: headerErrorKind(err), Err: err})

		return nil
	}

	if !h.MessageType.Recognized() {
		r.sink.OnEvent(telemetry.Event{
			Kind: telemetry.KindBadMessageType, CharacterID: h.CharacterID, SampleCounter: h.SampleCounter,
		})

		return nil
	}

	payload := buf[mvntp.HeaderSize : mvntp.HeaderSize+int(h.PayloadSize)]

	if h.IsLast && h.FragmentIndex == 0 {
		owned := make([]byte, len(payload))
		copy(owned, payload)

		return []CompletedFrame{{Header: h, Payload: owned}}
	}

	var evictions []Eviction
	frame, completed := r.insert(h, payload, nowMs, &evictions)
	r.reportEvictions(evictions)

	if !completed {
		return nil
	}

	return []CompletedFrame{frame}
}

func (r *Reassembler) insert(h mvntp.Header, payload []byte, nowMs int64, out *[]Eviction) (CompletedFrame, bool) {
	key := FragmentKey{CharacterID: h.CharacterID, SampleCounter: h.SampleCounter}

	cs, ok := r.chars[key.CharacterID]
	if !ok {
		cs = newCharacterState()
		r.chars[key.CharacterID] = cs
	}

	r.evictStale(cs, key.SampleCounter, out)

	el, exists := cs.index[key.SampleCounter]
	var p *partial
	if exists {
		p = el.Value.(*partial)
		if p.haveHeader && !headerConsistent(p.header, h) {
			r.sink.OnEvent(telemetry.Event{
				Kind: telemetry.KindInconsistentFragment, CharacterID: key.CharacterID, SampleCounter: key.SampleCounter,
			})
			cs.order.Remove(el)
			delete(cs.index, key.SampleCounter)
			exists = false
		}
	}

	if !exists {
		p = &partial{key: key, fragments: make(map[uint8][]byte), firstSeenMs: nowMs}
		el = cs.order.PushBack(p)
		cs.index[key.SampleCounter] = el

		for cs.order.Len() > r.cfg.CapacityPerCharacter {
			front := cs.order.Front()
			evicted := front.Value.(*partial)
			cs.order.Remove(front)
			delete(cs.index, evicted.key.SampleCounter)
			*out = append(*out, Eviction{Key: evicted.key, Reason: EvictionLRU, FragmentsReceived: len(evicted.fragments)})
		}
	}

	if !p.haveHeader {
		p.header = h
		p.haveHeader = true
	} else if h.FragmentIndex == 0 {
		p.header = h
	}

	owned := make([]byte, len(payload))
	copy(owned, payload)
	p.fragments[h.FragmentIndex] = owned

	if h.IsLast {
		p.sawLast = true
	}
	if h.FragmentIndex > p.highestIndex {
		p.highestIndex = h.FragmentIndex
	}

	if !p.isComplete() {
		return CompletedFrame{}, false
	}

	cs.order.Remove(el)
	delete(cs.index, key.SampleCounter)

	return CompletedFrame{Header: p.header, Payload: p.concatenate(r.bufs)}, true
}

// evictStale drops any partial for cs whose sample counter falls outside
// the configured window behind sampleCounter (spec §4.4 stale-sample
// cutoff).
func (r *Reassembler) evictStale(cs *characterState, sampleCounter uint32, out *[]Eviction) {
	var cutoff uint32
	if sampleCounter >= r.cfg.WindowSamples {
		cutoff = sampleCounter - r.cfg.WindowSamples
	}

	for sc, el := range cs.index {
		if sc >= cutoff {
			continue
		}
		p := el.Value.(*partial)
		cs.order.Remove(el)
		delete(cs.index, sc)
		*out = append(*out, Eviction{Key: p.key, Reason: EvictionStale, FragmentsReceived: len(p.fragments)})
	}
}

// Tick evicts partials that have aged past the configured wall-clock
// timeout (spec §4.4, invariant 4).
func (r *Reassembler) Tick(nowMs int64) []Eviction {
	var evictions []Eviction

	for _, cs := range r.chars {
		var next *list.Element
		for el := cs.order.Front(); el != nil; el = next {
			next = el.Next()
			p := el.Value.(*partial)
			if nowMs-p.firstSeenMs < r.cfg.TimeoutMs {
				continue
			}
			cs.order.Remove(el)
			delete(cs.index, p.key.SampleCounter)
			evictions = append(evictions, Eviction{Key: p.key, Reason: EvictionTimeout, FragmentsReceived: len(p.fragments)})
		}
	}

	r.reportEvictions(evictions)

	return evictions
}

func (r *Reassembler) reportEvictions(evictions []Eviction) {
	for _, ev := range evictions {
		var kind telemetry.Kind
		switch ev.Reason {
		case EvictionLRU:
			kind = telemetry.KindLRUEviction
		case EvictionStale:
			kind = telemetry.KindStaleEviction
		case EvictionTimeout:
			kind = telemetry.KindTimeoutEviction
		default:
			kind = telemetry.KindIncompleteEviction
		}
		r.sink.OnEvent(telemetry.Event{Kind: kind, CharacterID: ev.Key.CharacterID, SampleCounter: ev.Key.SampleCounter})
	}
}

func headerErrorKind(err error) telemetry.Kind {
	switch {
	case errors.Is(err, mvnerr.ErrBadMagic):
		return telemetry.KindBadMagic
	case errors.Is(err, mvnerr.ErrBadMessageType):
		return telemetry.KindBadMessageType
	case errors.Is(err, mvnerr.ErrLengthMismatch):
		return telemetry.KindLengthMismatch
	case errors.Is(err, mvnerr.ErrTruncated), errors.Is(err, mvnerr.ErrHeaderTooShort):
		return telemetry.KindTruncated
	default:
		return telemetry.KindTruncated
	}
}
