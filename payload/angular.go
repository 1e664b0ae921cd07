package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// DecodeAngularKinematics decodes a type-22 payload: 44 bytes per item
// (segment_id, quat, angular_velocity, angular_acceleration).
func DecodeAngularKinematics(h mvntp.Header, buf []byte) (AngularKinematics, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), strideAngularKinematics)
	if err != nil {
		return AngularKinematics{}, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	out := AngularKinematics{Items: make([]AngularKinematicsItem, 0, n)}
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
		angVel, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}
		angAcc, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}

		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		out.Items = append(out.Items, AngularKinematicsItem{
			SegmentID: segID, Quat: q, AngularVelocity: angVel, AngularAcceleration: angAcc,
		})
	}

	return out, itemErrs, nil
}

// Encode serializes a back to its wire form.
func (a AngularKinematics) Encode() []byte {
	w := wire.NewWriter(len(a.Items) * strideAngularKinematics)
	for _, item := range a.Items {
		w.AppendU32(item.SegmentID)
		writeQuat(w, item.Quat)
		writeVec3(w, item.AngularVelocity)
		writeVec3(w, item.AngularAcceleration)
	}

	return w.Bytes()
}
