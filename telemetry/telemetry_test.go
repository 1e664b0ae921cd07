package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "bad_magic", KindBadMagic.String())
	require.Equal(t, "timeout_eviction", KindTimeoutEviction.String())
	require.Equal(t, "unknown", Kind(255).String())
}

func TestEvent_StringIncludesErrWhenPresent(t *testing.T) {
	ev := Event{Kind: KindBadMagic, CharacterID: 1, SampleCounter: 7, Err: errors.New("boom")}
	require.Contains(t, ev.String(), "bad_magic")
	require.Contains(t, ev.String(), "boom")
}

func TestEvent_StringOmitsErrWhenNil(t *testing.T) {
	ev := Event{Kind: KindLRUEviction, CharacterID: 2, SampleCounter: 9}
	require.NotContains(t, ev.String(), "<nil>")
}

func TestNopSink_DiscardsEvents(t *testing.T) {
	var s Sink = NopSink{}
	s.OnEvent(Event{Kind: KindBadMagic})
}
