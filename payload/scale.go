package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
)

// DecodeScale decodes one type-13 fragment (spec §3.6, §4.3). The wire
// layout is self-describing: a segment_count (u32) followed by that many
// {name, origin} entries, then a point_count (u32) followed by that many
// {segment_id, point_id, name, flags, offset} entries. Exactly one of the
// two counts is non-zero per fragment — a "segments" packet has
// point_count == 0, a "points" packet has segment_count == 0 — but this
// decoder reads whichever sections are present without assuming that.
//
// A decoder instance may be invoked multiple times across distinct
// fragments of the same logical transmission; merging the resulting deltas
// into a character-keyed scale table is left to the caller (spec §4.3, §9).
func DecodeScale(buf []byte) (Scale, error) {
	c := wire.NewCursor(buf)
	var out Scale

	segmentCount, err := c.ReadU32()
	if err != nil {
		return out, err
	}
	if segmentCount > 0 {
		// segmentCount is an untrusted wire field; cap the preallocation at
		// the remaining buffer size (each item is at least a few bytes) so a
		// bogus huge count can't force a multi-gigabyte allocation up front.
		out.Segments = make([]ScaleSegmentItem, 0, min(int(segmentCount), c.Remaining()))
		for i := uint32(0); i < segmentCount; i++ {
			name, err := c.ReadLenPrefixedString()
			if err != nil {
				return out, err
			}
			origin, err := readVec3(c)
			if err != nil {
				return out, err
			}
			out.Segments = append(out.Segments, ScaleSegmentItem{Name: name, Origin: origin})
		}
	}

	pointCount, err := c.ReadU32()
	if err != nil {
		return out, err
	}
	if pointCount > 0 {
		// Same untrusted-count guard as above.
		out.Points = make([]ScalePointItem, 0, min(int(pointCount), c.Remaining()))
		for i := uint32(0); i < pointCount; i++ {
			segID, err := c.ReadU16()
			if err != nil {
				return out, err
			}
			pointID, err := c.ReadU16()
			if err != nil {
				return out, err
			}
			name, err := c.ReadLenPrefixedString()
			if err != nil {
				return out, err
			}
			flags, err := c.ReadU32()
			if err != nil {
				return out, err
			}
			offset, err := readVec3(c)
			if err != nil {
				return out, err
			}
			out.Points = append(out.Points, ScalePointItem{
				SegmentID: segID, PointID: pointID, Name: name, Flags: flags, Offset: offset,
			})
		}
	}

	return out, nil
}

// Encode serializes s back to its wire form.
func (s Scale) Encode() []byte {
	w := wire.NewWriter(64)
	w.AppendU32(uint32(len(s.Segments)))
	for _, seg := range s.Segments {
		w.AppendLenPrefixedString(seg.Name)
		writeVec3(w, seg.Origin)
	}

	w.AppendU32(uint32(len(s.Points)))
	for _, pt := range s.Points {
		w.AppendU16(pt.SegmentID)
		w.AppendU16(pt.PointID)
		w.AppendLenPrefixedString(pt.Name)
		w.AppendU32(pt.Flags)
		writeVec3(w, pt.Offset)
	}

	return w.Bytes()
}
