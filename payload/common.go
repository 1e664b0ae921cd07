package payload

import (
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvntp"
	"github.com/jiminghe/mvn-parser/segment"
)

func maxSegmentIndex(h mvntp.Header) int {
	return segment.MaxSegmentIndex(h.BodySegmentCount, h.PropCount, h.FingerSegmentCount)
}

func readVec3(c *wire.Cursor) (Vec3, error) {
	x, err := c.ReadF32()
	if err != nil {
		return Vec3{}, err
	}
	y, err := c.ReadF32()
	if err != nil {
		return Vec3{}, err
	}
	z, err := c.ReadF32()
	if err != nil {
		return Vec3{}, err
	}

	return Vec3{X: x, Y: y, Z: z}, nil
}

func readQuat(c *wire.Cursor) (Quat, error) {
	w, err := c.ReadF32()
	if err != nil {
		return Quat{}, err
	}
	x, err := c.ReadF32()
	if err != nil {
		return Quat{}, err
	}
	y, err := c.ReadF32()
	if err != nil {
		return Quat{}, err
	}
	z, err := c.ReadF32()
	if err != nil {
		return Quat{}, err
	}

	return Quat{W: w, X: x, Y: y, Z: z}, nil
}

func writeVec3(w *wire.Writer, v Vec3) {
	w.AppendF32(v.X)
	w.AppendF32(v.Y)
	w.AppendF32(v.Z)
}

func writeQuat(w *wire.Writer, q Quat) {
	w.AppendF32(q.W)
	w.AppendF32(q.X)
	w.AppendF32(q.Y)
	w.AppendF32(q.Z)
}
