package mvntp

import (
	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
)

// HeaderSize is the fixed size in bytes of the MXTP datagram header
// (spec §3.1).
const HeaderSize = 24

// magic is the fixed ASCII literal every datagram's header must begin with.
const magic = "MXTP"

// Header is the decoded form of the 24-byte datagram header (spec §3.1).
type Header struct {
	// MessageType is the decimal value of the two ASCII digits following
	// the "MXTP" literal.
	MessageType MessageType

	// SampleCounter monotonically increases per sampling instance; it may
	// skip values but never repeats across distinct sampling instances for
	// a given character.
	SampleCounter uint32

	// FragmentIndex is the low 7 bits of the datagram-counter byte.
	FragmentIndex uint8

	// IsLast is the high bit of the datagram-counter byte: true on the
	// final fragment of a sampling instance.
	IsLast bool

	// ItemCount is the number of items in THIS fragment's payload, not the
	// total across all fragments of the frame.
	ItemCount uint8

	// TimeCodeMs is milliseconds since recording start.
	TimeCodeMs uint32

	// CharacterID disambiguates multiple subjects sharing one stream.
	CharacterID uint8

	// BodySegmentCount is expected to be 23 regardless of message type.
	BodySegmentCount uint8

	// PropCount is 0-4.
	PropCount uint8

	// FingerSegmentCount is 0 or 40 (both hands combined).
	FingerSegmentCount uint8

	// PayloadSize is the bytes after the header in THIS fragment, as
	// declared on the wire (possibly clamped; see DecodeHeader).
	PayloadSize uint16
}

// DecodeHeader decodes the 24-byte header at the start of buf.
//
// It requires len(buf) >= HeaderSize, checks the four-byte "MXTP" literal
// (ErrBadMagic whatever cfg.StrictMagic says; with StrictMagic false the
// reassembler skips such a datagram without reporting it), parses the
// two ASCII digits into a message type code, and reconciles PayloadSize
// against the bytes actually remaining in buf: a mismatch is
// ErrLengthMismatch in strict mode, or silently clamped to the smaller of
// the two in lenient mode (cfg.LenientLength, the spec §6.4 default).
func DecodeHeader(buf []byte, cfg config.DecodeConfig) (Header, error) {
	var h Header

	if len(buf) < HeaderSize {
		return h, mvnerr.ErrHeaderTooShort
	}

	c := wire.NewCursor(buf)

	idBytes, err := c.ReadBytes(4)
	if err != nil {
		return h, err
	}
	if string(idBytes) != magic {
		return h, mvnerr.ErrBadMagic
	}

	typeDigits, err := c.ReadBytes(2)
	if err != nil {
		return h, err
	}
	msgType, ok := parseTwoDigits(typeDigits)
	if !ok {
		return h, mvnerr.ErrBadMessageType
	}
	h.MessageType = MessageType(msgType)

	h.SampleCounter, err = c.ReadU32()
	if err != nil {
		return h, err
	}

	datagramCounter, err := c.ReadU8()
	if err != nil {
		return h, err
	}
	h.IsLast = datagramCounter&0x80 != 0
	h.FragmentIndex = datagramCounter & 0x7F

	h.ItemCount, err = c.ReadU8()
	if err != nil {
		return h, err
	}

	h.TimeCodeMs, err = c.ReadU32()
	if err != nil {
		return h, err
	}

	h.CharacterID, err = c.ReadU8()
	if err != nil {
		return h, err
	}

	h.BodySegmentCount, err = c.ReadU8()
	if err != nil {
		return h, err
	}

	h.PropCount, err = c.ReadU8()
	if err != nil {
		return h, err
	}

	h.FingerSegmentCount, err = c.ReadU8()
	if err != nil {
		return h, err
	}

	if _, err := c.ReadU16(); err != nil { // reserved, ignored on read
		return h, err
	}

	h.PayloadSize, err = c.ReadU16()
	if err != nil {
		return h, err
	}

	remaining := len(buf) - HeaderSize
	if int(h.PayloadSize) != remaining {
		if !cfg.LenientLength {
			return h, mvnerr.ErrLengthMismatch
		}
		if remaining < 0 {
			remaining = 0
		}
		if int(h.PayloadSize) > remaining {
			h.PayloadSize = uint16(remaining)
		}
	}

	return h, nil
}

// parseTwoDigits parses two ASCII digit bytes into their decimal value,
// e.g. {'0','1'} -> 1, {'2','5'} -> 25.
func parseTwoDigits(b []byte) (int, bool) {
	if len(b) != 2 {
		return 0, false
	}
	hi, lo := b[0], b[1]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}

	return int(hi-'0')*10 + int(lo-'0'), true
}

// Encode serializes the header back to its 24-byte wire form. The reserved
// bytes are written as zero.
func (h Header) Encode() []byte {
	w := wire.NewWriter(HeaderSize)
	w.AppendASCII(magic)
	w.AppendASCII(h.MessageType.String())
	w.AppendU32(h.SampleCounter)

	datagramCounter := h.FragmentIndex & 0x7F
	if h.IsLast {
		datagramCounter |= 0x80
	}
	w.AppendU8(datagramCounter)
	w.AppendU8(h.ItemCount)
	w.AppendU32(h.TimeCodeMs)
	w.AppendU8(h.CharacterID)
	w.AppendU8(h.BodySegmentCount)
	w.AppendU8(h.PropCount)
	w.AppendU8(h.FingerSegmentCount)
	w.AppendU16(0) // reserved
	w.AppendU16(h.PayloadSize)

	return w.Bytes()
}
