package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// DecodeEulerPose decodes a type-01 payload: 28 bytes per item
// (segment_id, position, euler_xyz).
func DecodeEulerPose(h mvntp.Header, buf []byte) (EulerPose, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), strideEulerPose)
	if err != nil {
		return EulerPose{}, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	out := EulerPose{Items: make([]EulerPoseItem, 0, n)}
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
		euler, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}

		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		out.Items = append(out.Items, EulerPoseItem{SegmentID: segID, Position: pos, EulerXYZ: euler})
	}

	return out, itemErrs, nil
}

// Encode serializes p back to its wire form, for round-trip testing
// (spec §8 invariant 5).
func (p EulerPose) Encode() []byte {
	w := wire.NewWriter(len(p.Items) * strideEulerPose)
	for _, item := range p.Items {
		w.AppendU32(item.SegmentID)
		writeVec3(w, item.Position)
		writeVec3(w, item.EulerXYZ)
	}

	return w.Bytes()
}
