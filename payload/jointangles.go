package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
)

// DecodeJointAngles decodes a type-20 payload: 20 bytes per item
// (parent_point_id, child_point_id, rot_xyz_deg). Point IDs are not
// range-checked against segment counts here — spec §4.3 reserves that
// check for "segment-addressed" types; joint angles address points, whose
// validity is the consumer's concern once resolved via segment.SplitPointID.
func DecodeJointAngles(buf []byte) (JointAngles, error) {
	n, err := itemCount(len(buf), strideJointAngles)
	if err != nil {
		return JointAngles{}, err
	}

	c := wire.NewCursor(buf)
	out := JointAngles{Items: make([]JointAngleItem, 0, n)}

	for i := 0; i < n; i++ {
		parent, err := c.ReadU32()
		if err != nil {
			return out, err
		}
		child, err := c.ReadU32()
		if err != nil {
			return out, err
		}
		rot, err := readVec3(c)
		if err != nil {
			return out, err
		}

		out.Items = append(out.Items, JointAngleItem{ParentPointID: parent, ChildPointID: child, RotXYZDeg: rot})
	}

	return out, nil
}

// Encode serializes j back to its wire form.
func (j JointAngles) Encode() []byte {
	w := wire.NewWriter(len(j.Items) * strideJointAngles)
	for _, item := range j.Items {
		w.AppendU32(item.ParentPointID)
		w.AppendU32(item.ChildPointID)
		writeVec3(w, item.RotXYZDeg)
	}

	return w.Bytes()
}
