package telemetry

import (
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	debugs []string
	warns  []string
}

var _ logging.LeveledLogger = (*capturingLogger)(nil)

func (l *capturingLogger) Trace(string)          {}
func (l *capturingLogger) Tracef(string, ...any) {}
func (l *capturingLogger) Debug(msg string)      { l.debugs = append(l.debugs, msg) }
func (l *capturingLogger) Debugf(format string, args ...any) {
	l.debugs = append(l.debugs, format)
}
func (l *capturingLogger) Info(string)          {}
func (l *capturingLogger) Infof(string, ...any) {}
func (l *capturingLogger) Warn(msg string)       { l.warns = append(l.warns, msg) }
func (l *capturingLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, format)
}
func (l *capturingLogger) Error(string)          {}
func (l *capturingLogger) Errorf(string, ...any) {}

func TestLogSink_EvictionKindsLogAtDebug(t *testing.T) {
	log := &capturingLogger{}
	sink := NewLogSink(log)

	sink.OnEvent(Event{Kind: KindLRUEviction, CharacterID: 1, SampleCounter: 5})

	require.Len(t, log.debugs, 1)
	require.Empty(t, log.warns)
}

func TestLogSink_DecodeErrorKindsLogAtWarn(t *testing.T) {
	log := &capturingLogger{}
	sink := NewLogSink(log)

	sink.OnEvent(Event{Kind: KindBadMagic})

	require.Len(t, log.warns, 1)
	require.Empty(t, log.debugs)
}
