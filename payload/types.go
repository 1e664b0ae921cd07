// Package payload implements the per-message-type decoders of spec §3.6 and
// §4.3: one pure function per supported message type, each turning a
// completed frame's concatenated fragment bytes into a typed payload value.
//
// Every decoder bounds-checks before reading (via internal/wire), rejects
// payloads whose length isn't a multiple of the type's per-item stride
// (ErrMisalignedPayload), and reports out-of-range segment/point IDs as
// recoverable mvnerr.ItemError values rather than aborting the frame —
// the offending item is dropped and decoding continues, privileging
// real-time progress over strict correctness (spec §4.3, §7).
package payload

// Vec3 is a Cartesian triple. Units and up-axis/handedness vary by message
// type; see the doc comment on each typed payload.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a quaternion in (W, X, Y, Z) order, i.e. (re, i, j, k). Normalized
// but not sign-canonical (spec §3.6).
type Quat struct {
	W, X, Y, Z float32
}

// EulerPoseItem is one segment's pose from a type-01 frame.
type EulerPoseItem struct {
	SegmentID uint32
	Position  Vec3 // centimeters
	EulerXYZ  Vec3 // degrees
}

// EulerPose is the type-01 payload: Y-up, right-handed Euler pose.
type EulerPose struct {
	Items []EulerPoseItem
}

// QuaternionPoseItem is one segment's pose from a type-02 or type-05 frame.
type QuaternionPoseItem struct {
	SegmentID uint32
	Position  Vec3
	Quat      Quat
}

// QuaternionPose is the type-02 payload: Z-up, right-handed quaternion pose.
type QuaternionPose struct {
	Items []QuaternionPoseItem
}

// Unity3DPose is the type-05 payload: Y-up, left-handed quaternion pose
// using the Unity3D segment ordering. Pelvis and props are global; all
// other segments are local to their parent in the Unity3D hierarchy.
type Unity3DPose struct {
	Items []QuaternionPoseItem
}

// PointItem is one landmark from a type-03 frame.
type PointItem struct {
	PointID  uint32
	Position Vec3 // centimeters, Y-up, right-handed
}

// Points is the type-03 payload.
type Points struct {
	Items []PointItem
}

// Meta is the type-12 payload: tag name to string value, derived from
// newline-separated "tag:value" lines. Recognized tags are name, xmid,
// color (hex RRGGBB); unknown tags are preserved verbatim.
type Meta map[string]string

// ScaleSegmentItem is one body segment's T-pose origin from a type-13
// "segments" sub-packet.
type ScaleSegmentItem struct {
	Name   string
	Origin Vec3 // Z-up, right-handed
}

// ScalePointItem is one landmark's T-pose offset from a type-13 "points"
// sub-packet.
type ScalePointItem struct {
	SegmentID uint16
	PointID   uint16
	Name      string
	Flags     uint32
	Offset    Vec3 // Z-up, right-handed
}

// Scale is one type-13 fragment's contribution: a "segments" packet
// (point_count==0) fills Segments, a "points" packet (segment_count==0)
// fills Points; DecodeScale fills both if a fragment carries both. The core
// emits these as per-packet deltas; merging into a character-keyed T-pose
// table is a consumer responsibility (spec §4.3, §9).
type Scale struct {
	Segments []ScaleSegmentItem
	Points   []ScalePointItem
}

// JointAngleItem is one joint's relative rotation from a type-20 frame.
type JointAngleItem struct {
	ParentPointID uint32
	ChildPointID  uint32
	RotXYZDeg     Vec3
}

// JointAngles is the type-20 payload.
type JointAngles struct {
	Items []JointAngleItem
}

// LinearKinematicsItem is one segment's linear kinematics from a type-21
// frame.
type LinearKinematicsItem struct {
	SegmentID    uint32
	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3
}

// LinearKinematics is the type-21 payload.
type LinearKinematics struct {
	Items []LinearKinematicsItem
}

// AngularKinematicsItem is one segment's angular kinematics from a type-22
// frame.
type AngularKinematicsItem struct {
	SegmentID           uint32
	Quat                Quat
	AngularVelocity     Vec3
	AngularAcceleration Vec3
}

// AngularKinematics is the type-22 payload.
type AngularKinematics struct {
	Items []AngularKinematicsItem
}

// TrackerKinematicsItem is one tracked segment's sensor-derived kinematics
// from a type-23 frame. Only segments equipped with a tracker appear;
// item order does not necessarily match segment index (spec §3.6).
type TrackerKinematicsItem struct {
	SegmentID        uint32
	Quat             Quat
	FreeAcceleration Vec3 // gravity-compensated
	MagneticField    Vec3
}

// TrackerKinematics is the type-23 payload.
type TrackerKinematics struct {
	Items []TrackerKinematicsItem
}

// CenterOfMass is the type-24 payload: a single position, 12 bytes total
// regardless of item_count.
type CenterOfMass struct {
	Position Vec3
}

// TimeCode is the type-25 payload: a 12-byte ASCII string matching
// HH:MM:SS.mmm.
type TimeCode struct {
	Value string
}
