package payload

import (
	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/internal/wire"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
	"github.com/jiminghe/mvn-parser/segment"
)

// DecodePoints decodes a type-03 payload: 16 bytes per item (point_id,
// position). The point_id is split back into (segment_id, local_point_id)
// using cfg.PointIDMultiplier to validate the derived segment against the
// frame's declared counts (spec §3.4, §4.3).
func DecodePoints(h mvntp.Header, buf []byte, cfg config.DecodeConfig) (Points, []mvnerr.ItemError, error) {
	n, err := itemCount(len(buf), stridePoints)
	if err != nil {
		return Points{}, nil, err
	}

	rng := newSegmentRange(h)
	c := wire.NewCursor(buf)
	out := Points{Items: make([]PointItem, 0, n)}
	var itemErrs []mvnerr.ItemError

	for i := 0; i < n; i++ {
		pointID, err := c.ReadU32()
		if err != nil {
			return out, itemErrs, err
		}
		pos, err := readVec3(c)
		if err != nil {
			return out, itemErrs, err
		}

		segID, _ := segment.SplitPointID(pointID, cfg.PointIDMultiplier)
		if err := rng.checkSegmentID(segID); err != nil {
			itemErrs = append(itemErrs, mvnerr.ItemError{ItemIndex: i, Err: err})
			continue
		}

		out.Items = append(out.Items, PointItem{PointID: pointID, Position: pos})
	}

	return out, itemErrs, nil
}

// Encode serializes p back to its wire form.
func (p Points) Encode() []byte {
	w := wire.NewWriter(len(p.Items) * stridePoints)
	for _, item := range p.Items {
		w.AppendU32(item.PointID)
		writeVec3(w, item.Position)
	}

	return w.Bytes()
}
