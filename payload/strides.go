package payload

import (
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
)

// Per-item byte strides (spec §3.6).
const (
	strideEulerPose         = 28
	strideQuaternionPose    = 32
	stridePoints            = 16
	strideJointAngles       = 20
	strideLinearKinematics  = 40
	strideAngularKinematics = 44
	strideTrackerKinematics = 44
	sizeCenterOfMass        = 12
	sizeTimeCode            = 12
)

// itemCount validates that len(payload) is a non-negative multiple of
// stride and returns the item count, or ErrMisalignedPayload otherwise.
func itemCount(payloadLen, stride int) (int, error) {
	if stride <= 0 || payloadLen%stride != 0 {
		return 0, mvnerr.ErrMisalignedPayload
	}

	return payloadLen / stride, nil
}

// segmentRange bundles the header counts needed to validate a segment_id.
type segmentRange struct {
	maxIndex int // 0-based
}

func newSegmentRange(h mvntp.Header) segmentRange {
	return segmentRange{maxIndex: maxSegmentIndex(h)}
}

// checkSegmentID validates a 1-based wire segment_id against the frame's
// declared counts: it must be >= 1 and its index (segment_id - 1) must not
// exceed segment.MaxSegmentIndex, which follows the sparse prop/finger
// index layout. It never aborts the frame; callers append
// the resulting error to an item-error slice and skip the item.
func (r segmentRange) checkSegmentID(segmentID uint32) error {
	if segmentID < 1 || int(segmentID)-1 > r.maxIndex {
		return mvnerr.ErrSegmentOutOfRange
	}

	return nil
}
