package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// DecodeTrackerKinematics decodes a type-23 payload: 44 bytes per item
// (segment_id, quat, free_acceleration, magnetic_field). Only segments
// equipped with a tracker appear; item order does not necessarily match
// segment index (spec §3.6).
func DecodeTrackerKinematics(h mvntp.Header, buf []byte) (TrackerKinematics, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), strideTrackerKinematics)
	if err != nil {
		return TrackerKinematics{}, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	out := TrackerKinematics{Items: make([]TrackerKinematicsItem, 0, n)}
	var itemErrs []mvnerr.ItemError

	for i := 0; i < n; i++ {
		segID, err := c.ReadU32()
		if err != nil {
			return out, itemErrs, err
		}
		q, err := readQuat(c)
		if err != nil {
			return out, itemErrs, err
		}
		freeAcc, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}
		mag, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}

		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		out.Items = append(out.Items, TrackerKinematicsItem{
			SegmentID: segID, Quat: q, FreeAcceleration: freeAcc, MagneticField: mag,
		})
	}

	return out, itemErrs, nil
}

// Encode serializes t back to its wire form.
func (t TrackerKinematics) Encode() []byte {
	w := wire.NewWriter(len(t.Items) * strideTrackerKinematics)
	for _, item := range t.Items {
		w.AppendU32(item.SegmentID)
		writeQuat(w, item.Quat)
		writeVec3(w, item.FreeAcceleration)
		writeVec3(w, item.MagneticField)
	}

	return w.Bytes()
}
