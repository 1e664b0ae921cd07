// Package telemetry reports non-fatal receiver events — the error kinds
// and eviction outcomes in spec §7 — without ever aborting the calling
// path. It is grounded on pion-webrtc's use of github.com/pion/logging:
// a small leveled-logger interface that the receiver writes through
// rather than importing a heavyweight logging framework directly.
package telemetry

import "fmt"

// Kind identifies the category of a reported event.
type Kind uint8

const (
	KindBadMagic Kind = iota
	KindBadMessageType
	KindTruncated
	KindLengthMismatch
	KindMisalignedPayload
	KindSegmentOutOfRange
	KindInconsistentFragment
	KindIncompleteEviction
	KindLRUEviction
	KindStaleEviction
	KindTimeoutEviction
)

func (k Kind) String() string {
	switch k {
	case KindBadMagic:
		return "bad_magic"
	case KindBadMessageType:
		return "bad_message_type"
	case KindTruncated:
		return "truncated"
	case KindLengthMismatch:
		return "length_mismatch"
	case KindMisalignedPayload:
		return "misaligned_payload"
	case KindSegmentOutOfRange:
		return "segment_out_of_range"
	case KindInconsistentFragment:
		return "inconsistent_fragment"
	case KindIncompleteEviction:
		return "incomplete_eviction"
	case KindLRUEviction:
		return "lru_eviction"
	case KindStaleEviction:
		return "stale_eviction"
	case KindTimeoutEviction:
		return "timeout_eviction"
	default:
		return "unknown"
	}
}

// Event is one reported occurrence. CharacterID and SampleCounter are zero
// when the event predates knowing either (e.g. BadMagic on an unparsed
// datagram). Err carries the header decode error for events raised by a
// failed header decode; it is nil for eviction kinds and for the
// bad-message-type and inconsistent-fragment events the reassembler raises
// after a successful header decode.
type Event struct {
	Kind          Kind
	CharacterID   uint8
	SampleCounter uint32
	Err           error
}

func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s character=%d sample=%d: %v", e.Kind, e.CharacterID, e.SampleCounter, e.Err)
	}

	return fmt.Sprintf("%s character=%d sample=%d", e.Kind, e.CharacterID, e.SampleCounter)
}

// Sink receives telemetry events. Implementations must not block; the
// receive path calls OnEvent synchronously from its hot path (spec §5).
type Sink interface {
	OnEvent(Event)
}

// NopSink discards every event. It is the zero-cost default.
type NopSink struct{}

var _ Sink = NopSink{}

func (NopSink) OnEvent(Event) {}
