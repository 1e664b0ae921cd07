package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// DecodeQuaternionPose decodes a type-02 payload: 32 bytes per item
// (segment_id, position, quat).
func DecodeQuaternionPose(h mvntp.Header, buf []byte) (QuaternionPose, []mvnerr.ItemError, error) {
	items, itemErrs, err := decodeQuatItems(h, buf)

	return QuaternionPose{Items: items}, itemErrs, err
}

// DecodeUnity3DPose decodes a type-05 payload: same 32-byte-per-item wire
// shape as type 02, but interpreted under the Unity3D segment ordering by
// the caller (segment.OrderUnity3D). Fingers are not supported for this
// message type (spec §3.3).
func DecodeUnity3DPose(h mvntp.Header, buf []byte) (Unity3DPose, []mvnerr.ItemError, error) {
	items, itemErrs, err := decodeQuatItems(h, buf)

	return Unity3DPose{Items: items}, itemErrs, err
}

func decodeQuatItems(h mvntp.Header, buf []byte) ([]QuaternionPoseItem, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), strideQuaternionPose)
	if err != nil {
		return nil, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	items := make([]QuaternionPoseItem, 0, n)
	var itemErrs []mvnerr.ItemError

	for i := 0; i < n; i++ {
		segID, err := c.ReadU32()
		if err != nil {
			return items, itemErrs, err
		}
		pos, err := readVec3(c)
		if err != nil {
			return items, itemErrs, err
		}
		q, err := readQuat(c)
		if err != nil {
			return items, itemErrs, err
		}

		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		items = append(items, QuaternionPoseItem{SegmentID: segID, Position: pos, Quat: q})
	}

	return items, itemErrs, nil
}

// Encode serializes p back to its wire form.
func (p QuaternionPose) Encode() []byte { return encodeQuatItems(p.Items) }

// Encode serializes p back to its wire form.
func (p Unity3DPose) Encode() []byte { return encodeQuatItems(p.Items) }

func encodeQuatItems(items []QuaternionPoseItem) []byte {
	w := wire.NewWriter(len(items) * strideQuaternionPose)
	for _, item := range items {
		w.AppendU32(item.SegmentID)
		writeVec3(w, item.Position)
		writeQuat(w, item.Quat)
	}

	return w.Bytes()
}
