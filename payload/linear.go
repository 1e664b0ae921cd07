package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// DecodeLinearKinematics decodes a type-21 payload: 40 bytes per item
// (segment_id, position, velocity, acceleration).
func DecodeLinearKinematics(h mvntp.Header, buf []byte) (LinearKinematics, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), strideLinearKinematics)
	if err != nil {
		return LinearKinematics{}, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	out := LinearKinematics{Items: make([]LinearKinematicsItem, 0, n)}
	var itemErrs []mvnerr.ItemError

	for i := 0; i < n; i++ {
		segID, err := c.ReadU32()
		if err != nil {
			return out, itemErrs, err
		}
		pos, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}
		vel, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}
		acc, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}

		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		out.Items = append(out.Items, LinearKinematicsItem{SegmentID: segID, Position: pos, Velocity: vel, Acceleration: acc})
	}

	return out, itemErrs, nil
}

// Encode serializes l back to its wire form.
func (l LinearKinematics) Encode() []byte {
	w := wire.NewWriter(len(l.Items) * strideLinearKinematics)
	for _, item := range l.Items {
		w.AppendU32(item.SegmentID)
		writeVec3(w, item.Position)
		writeVec3(w, item.Velocity)
		writeVec3(w, item.Acceleration)
	}

	return w.Bytes()
}
