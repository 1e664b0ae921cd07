// Package reassemble implements the per-(character, sample) fragment
// reassembly state machine of spec §4.4, grounded on the BSD-Right IP
// fragment reassembler in other_examples (firestige-Otus's internal/core
// decoder): a map keyed by flow identity to a per-flow fragment list and a
// container/list.List for LRU ordering, here one list per character. The
// three-part eviction policy (capacity, staleness, wall-clock timeout) is
// this package's own; the grounding source shows only the LRU part.
package reassemble

import "github.com/jiminghe/mvn-parser/mvntp"

// FragmentKey identifies one sampling instance's reassembly state.
type FragmentKey struct {
	CharacterID   uint8
	SampleCounter uint32
}

// CompletedFrame is one fully reassembled sampling instance: the
// authoritative header (from fragment 0 if seen, otherwise the first
// fragment received) plus the fragment payloads concatenated in ascending
// fragment-index order. Typed-payload decoding is a separate stage
// (payload.Decode), per spec §6.2's push/decode split.
type CompletedFrame struct {
	Header  mvntp.Header
	Payload []byte
}

// EvictionReason identifies why a partial frame was evicted without
// completing.
type EvictionReason uint8

const (
	// EvictionLRU fires when a character's in-flight partial count exceeds
	// the configured capacity.
	EvictionLRU EvictionReason = iota
	// EvictionStale fires when a newly observed sample counter renders an
	// older partial for the same character unreachable (outside the
	// configured window).
	EvictionStale
	// EvictionTimeout fires from Tick when a partial has aged past the
	// configured wall-clock timeout.
	EvictionTimeout
)

func (r EvictionReason) String() string {
	switch r {
	case EvictionLRU:
		return "lru"
	case EvictionStale:
		return "stale"
	case EvictionTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Eviction reports a partial frame discarded without completing (spec §7
// Incomplete outcome — telemetry only, never an error).
type Eviction struct {
	Key              FragmentKey
	Reason           EvictionReason
	FragmentsReceived int
}
