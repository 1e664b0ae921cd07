package payload

import "github.com/jiminghe/mvn-parser/mvnerr"

// DecodeTimeCode decodes a type-25 payload: exactly 12 ASCII bytes matching
// the pattern DD:DD:DD.DDD.
func DecodeTimeCode(buf []byte) (TimeCode, error) {
	if len(buf) != sizeTimeCode || !matchesTimeCodePattern(buf) {
		return TimeCode{}, mvnerr.ErrInvalidTimeCode
	}

	return TimeCode{Value: string(buf)}, nil
}

// matchesTimeCodePattern reports whether b (already known to be 12 bytes)
// matches DD:DD:DD.DDD: two digits, ':', two digits, ':', two digits, '.',
// three digits.
func matchesTimeCodePattern(b []byte) bool {
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }

	return isDigit(b[0]) && isDigit(b[1]) && b[2] == ':' &&
		isDigit(b[3]) && isDigit(b[4]) && b[5] == ':' &&
		isDigit(b[6]) && isDigit(b[7]) && b[8] == '.' &&
		isDigit(b[9]) && isDigit(b[10]) && isDigit(b[11])
}

// Encode returns the wire form of t, which is just its 12-byte ASCII value.
// It does not validate the pattern; callers that construct a TimeCode by
// hand are responsible for formatting it correctly.
func (t TimeCode) Encode() []byte {
	return []byte(t.Value)
}
