package record

import "github.com/jiminghe/mvn-parser/payload"

// ScaleTable is the character-keyed T-pose scale table that spec §4.3/§9
// leaves as a consumer responsibility: the core emits one payload.Scale
// delta per type-13 fragment, and this merges successive deltas for a
// given character into the accumulated segment and point tables.
type ScaleTable struct {
	segments map[string]payload.ScaleSegmentItem
	points   map[[2]uint16]payload.ScalePointItem // keyed by (SegmentID, PointID)
}

// NewScaleTable returns an empty table.
func NewScaleTable() *ScaleTable {
	return &ScaleTable{
		segments: make(map[string]payload.ScaleSegmentItem),
		points:   make(map[[2]uint16]payload.ScalePointItem),
	}
}

// Merge applies one fragment's delta. Later entries for the same segment
// name or (segment, point) pair overwrite earlier ones, matching a sender
// that periodically re-sends its current T-pose.
func (t *ScaleTable) Merge(delta payload.Scale) {
	for _, seg := range delta.Segments {
		t.segments[seg.Name] = seg
	}
	for _, pt := range delta.Points {
		t.points[[2]uint16{pt.SegmentID, pt.PointID}] = pt
	}
}

// Segments returns the current accumulated segment origins.
func (t *ScaleTable) Segments() []payload.ScaleSegmentItem {
	out := make([]payload.ScaleSegmentItem, 0, len(t.segments))
	for _, seg := range t.segments {
		out = append(out, seg)
	}

	return out
}

// Points returns the current accumulated point offsets.
func (t *ScaleTable) Points() []payload.ScalePointItem {
	out := make([]payload.ScalePointItem, 0, len(t.points))
	for _, pt := range t.points {
		out = append(out, pt)
	}

	return out
}
