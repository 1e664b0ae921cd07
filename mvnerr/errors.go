// Package mvnerr defines the sentinel error values returned across the
// decode and reassembly paths.
//
// These follow the taxonomy of spec §7: every error names a reason to
// discard the smallest possible unit of work (item < frame < fragment <
// datagram) and is meant to be checked with errors.Is, never by string
// matching or type assertion. No error type carries a stack trace or
// causal chain beyond fmt.Errorf's %w wrapping — the same convention the
// teacher's own errs package is used under (errs.ErrInvalidHeaderSize,
// errs.ErrInvalidTimestampPayloadOffset, ...), though that package's source
// was not present in the retrieved reference set.
package mvnerr

import "errors"

var (
	// ErrBadMagic is returned when the first four bytes of a datagram are
	// not the ASCII literal "MXTP".
	ErrBadMagic = errors.New("mvnerr: bad magic")

	// ErrBadMessageType is returned when the two-byte message type code is
	// not two ASCII digits. A well-formed code outside the recognized set
	// {1,2,3,5,12,13,20,21,22,23,24,25} is not an error from DecodeHeader;
	// the reassembler reports it as a bad-message-type telemetry event.
	ErrBadMessageType = errors.New("mvnerr: bad message type")

	// ErrTruncated is returned when a declared length exceeds the bytes
	// actually available in the buffer.
	ErrTruncated = errors.New("mvnerr: truncated")

	// ErrLengthMismatch is returned in strict mode when header payload_size
	// does not equal the bytes available after the header.
	ErrLengthMismatch = errors.New("mvnerr: payload length mismatch")

	// ErrMisalignedPayload is returned when a payload's length is not a
	// multiple of its message type's per-item stride.
	ErrMisalignedPayload = errors.New("mvnerr: misaligned payload")

	// ErrSegmentOutOfRange is returned per-item when a segment_id or point_id
	// falls outside the valid range for the frame's declared counts. It
	// never aborts the containing frame.
	ErrSegmentOutOfRange = errors.New("mvnerr: segment out of range")

	// ErrInconsistentFragment names the case where a fragment's header
	// disagrees with the partial frame it would join (message_type or
	// counts). The reassembler does not return it; it reports the case as an
	// inconsistent-fragment telemetry event.
	ErrInconsistentFragment = errors.New("mvnerr: inconsistent fragment")

	// ErrHeaderTooShort is returned when a buffer is shorter than the fixed
	// 24-byte header.
	ErrHeaderTooShort = errors.New("mvnerr: header too short")

	// ErrInvalidTimeCode is returned when a type-25 payload is not exactly
	// 12 bytes matching the DD:DD:DD.DDD pattern.
	ErrInvalidTimeCode = errors.New("mvnerr: invalid time code format")

	// ErrUnsupportedMessageType is returned when payload.Decode is asked to
	// decode a message type that has no payload decoder, including the
	// deprecated types 04, 10, 11.
	ErrUnsupportedMessageType = errors.New("mvnerr: unsupported message type")
)

// ItemError records a non-fatal, per-item decode problem (spec §7:
// SegmentOutOfRange) alongside the index of the offending item within its
// fragment's payload, so telemetry can report exactly which item was
// dropped without aborting the rest of the frame.
type ItemError struct {
	ItemIndex int
	Err       error
}

func (e ItemError) Error() string {
	return e.Err.Error()
}

func (e ItemError) Unwrap() error {
	return e.Err
}
