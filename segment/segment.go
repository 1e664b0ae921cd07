// Package segment maps per-character item counts (body/prop/finger) to
// segment indices under the two wire orderings defined by spec §3.3, and
// resolves the composite point IDs of spec §3.4.
//
// A segment is identified by a 0-based index; the wire carries ID =
// index + 1 (spec §3.3). This package never reads a datagram itself — it's
// a pure lookup table consulted by the payload decoders.
package segment

// Body is one of the 23 fixed body segments shared by both orderings. Its
// integer value has no wire meaning by itself; only its position within
// DefaultOrder or Unity3DOrder does.
type Body uint8

const (
	Pelvis Body = iota
	L5
	L3
	T12
	T8
	Neck
	Head
	RightShoulder
	RightUpperArm
	RightForearm
	RightHand
	LeftShoulder
	LeftUpperArm
	LeftForearm
	LeftHand
	RightUpperLeg
	RightLowerLeg
	RightFoot
	RightToe
	LeftUpperLeg
	LeftLowerLeg
	LeftFoot
	LeftToe
)

var bodyNames = [...]string{
	Pelvis:        "Pelvis",
	L5:            "L5",
	L3:            "L3",
	T12:           "T12",
	T8:            "T8",
	Neck:          "Neck",
	Head:          "Head",
	RightShoulder: "RightShoulder",
	RightUpperArm: "RightUpperArm",
	RightForearm:  "RightForearm",
	RightHand:     "RightHand",
	LeftShoulder:  "LeftShoulder",
	LeftUpperArm:  "LeftUpperArm",
	LeftForearm:   "LeftForearm",
	LeftHand:      "LeftHand",
	RightUpperLeg: "RightUpperLeg",
	RightLowerLeg: "RightLowerLeg",
	RightFoot:     "RightFoot",
	RightToe:      "RightToe",
	LeftUpperLeg:  "LeftUpperLeg",
	LeftLowerLeg:  "LeftLowerLeg",
	LeftFoot:      "LeftFoot",
	LeftToe:       "LeftToe",
}

// String returns the segment's canonical name.
func (b Body) String() string {
	if int(b) < len(bodyNames) {
		return bodyNames[b]
	}

	return "Unknown"
}

// BodySegmentCount is the number of body segments in either ordering
// (spec §3.1: body_segment_count is expected to be 23).
const BodySegmentCount = 23

// DefaultOrder is the index->segment table used by message types 01, 02,
// 03, 20, 21, 22, 23 (spec §3.3).
var DefaultOrder = [BodySegmentCount]Body{
	Pelvis, L5, L3, T12, T8, Neck, Head,
	RightShoulder, RightUpperArm, RightForearm, RightHand,
	LeftShoulder, LeftUpperArm, LeftForearm, LeftHand,
	RightUpperLeg, RightLowerLeg, RightFoot, RightToe,
	LeftUpperLeg, LeftLowerLeg, LeftFoot, LeftToe,
}

// Unity3DOrder is the re-permuted index->segment table used by message
// type 05: Pelvis, then the right leg chain, left leg chain, spine up
// through Head, left arm chain, right arm chain (spec §3.3).
var Unity3DOrder = [BodySegmentCount]Body{
	Pelvis,
	RightUpperLeg, RightLowerLeg, RightFoot, RightToe,
	LeftUpperLeg, LeftLowerLeg, LeftFoot, LeftToe,
	L5, L3, T12, T8, Neck, Head,
	LeftShoulder, LeftUpperArm, LeftForearm, LeftHand,
	RightShoulder, RightUpperArm, RightForearm, RightHand,
}

// Sparse index layout beyond the 23 body segments (spec §9: "index 23 is
// reserved but Prop1 is documented at index 24"). Four prop slots are
// always reserved at indices 24-27 regardless of how many are actually
// populated for a given character, so that finger indices have a fixed
// starting point independent of prop_count.
const (
	reservedIndex    = BodySegmentCount        // 23, unused
	propBaseIndex    = reservedIndex           // 23
	maxProps         = 4                       // prop slots 1-4 occupy indices 24-27
	FirstFingerIndex = propBaseIndex + maxProps + 1 // 28
	FingersPerHand   = 20
)

// PropIndex returns the 0-based segment index for prop slot i (1-4), per
// the sparse mapping "23 + i" in spec §9. It panics for i outside [1,4].
func PropIndex(i int) int {
	if i < 1 || i > maxProps {
		panic("segment: prop slot out of range")
	}

	return propBaseIndex + i
}

// PropName returns the conventional name for prop slot i (1-4), e.g. "Prop1".
func PropName(i int) string {
	const digits = "0123456789"
	if i < 1 || i > maxProps {
		return "Prop?"
	}

	return "Prop" + string(digits[i])
}

// LeftFingerIndex returns the 0-based segment index of the given left-hand
// finger slot (0-19).
func LeftFingerIndex(slot int) int { return FirstFingerIndex + slot }

// RightFingerIndex returns the 0-based segment index of the given
// right-hand finger slot (0-19).
func RightFingerIndex(slot int) int { return FirstFingerIndex + FingersPerHand + slot }

// Ordering selects which index->segment table applies to a message type.
type Ordering int

const (
	// OrderDefault is used by message types 01, 02, 03, 20, 21, 22, 23.
	OrderDefault Ordering = iota
	// OrderUnity3D is used by message type 05; it does not support fingers.
	OrderUnity3D
)

// NameAt returns the body segment name at a given 0-based index under the
// given ordering, or "" if index is outside [0, BodySegmentCount).
func NameAt(order Ordering, index int) string {
	if index < 0 || index >= BodySegmentCount {
		return ""
	}
	if order == OrderUnity3D {
		return Unity3DOrder[index].String()
	}

	return DefaultOrder[index].String()
}

// MaxSegmentIndex returns the highest valid 0-based segment index for a
// character with the given per-fragment counts, used to bounds-check
// segment_id fields. It follows the sparse layout above rather than the
// plain sum of the counts: with props the bound is PropIndex(propCount),
// with fingers it is FirstFingerIndex + fingerCount - 1, so (23, 0, 40)
// gives 67, not 62.
func MaxSegmentIndex(bodyCount, propCount, fingerCount uint8) int {
	max := int(bodyCount) - 1
	if propCount > 0 {
		if idx := propBaseIndex + int(propCount); idx > max {
			max = idx
		}
	}
	if fingerCount > 0 {
		if idx := FirstFingerIndex + int(fingerCount) - 1; idx > max {
			max = idx
		}
	}

	return max
}

// PointID computes the composite wire ID for a point: segment_id combined
// with a local point index within that segment (spec §3.4). Multiplier must
// be 100 or 256; the core defaults to 256, matching the worked example in
// spec §3.4/§9, since spec text and example disagree (100 vs 256).
func PointID(segmentID uint32, localPointID uint32, multiplier int) uint32 {
	return segmentID*uint32(multiplier) + localPointID
}

// SplitPointID inverts PointID, recovering (segmentID, localPointID) from a
// wire point ID under the given multiplier.
func SplitPointID(pointID uint32, multiplier int) (segmentID, localPointID uint32) {
	m := uint32(multiplier)

	return pointID / m, pointID % m
}
