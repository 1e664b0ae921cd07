package telemetry

import "github.com/pion/logging"

// LogSink writes events through a pion/logging LeveledLogger. Decode-error
// kinds (a malformed or out-of-range datagram) log at Warn; eviction kinds
// (bounded-memory housekeeping, not errors per spec §7) log at Debug.
type LogSink struct {
	log logging.LeveledLogger
}

var _ Sink = (*LogSink)(nil)

// NewLogSink wraps logger. A nil factory-produced logger is never passed
// here; construct one with logging.NewDefaultLoggerFactory().NewLogger(...).
func NewLogSink(logger logging.LeveledLogger) *LogSink {
	return &LogSink{log: logger}
}

func (s *LogSink) OnEvent(ev Event) {
	switch ev.Kind {
	case KindIncompleteEviction, KindLRUEviction, KindStaleEviction, KindTimeoutEviction:
		s.log.Debugf("%s", ev)
	default:
		s.log.Warnf("%s", ev)
	}
}
