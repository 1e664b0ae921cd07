package payload

import (
	"testing"

	"github.com/jiminghe/mvn-parser/config"
	"github.com/jiminghe/mvn-parser/mvnerr"
	"github.com/jiminghe/mvn-parser/mvntp"
	"github.com/stretchr/testify/require"
)

func defaultHeader(msgType mvntp.MessageType) mvntp.Header {
	return mvntp.Header{
		MessageType:        msgType,
		BodySegmentCount:   23,
		PropCount:          0,
		FingerSegmentCount: 0,
	}
}

// S1: minimal Euler pose, single segment, using the header and item values
// of spec §8 S1; the payload bytes are produced by EulerPose.Encode.
func TestDecodeEulerPose_S1WorkedExample(t *testing.T) {
	h := mvntp.Header{
		MessageType:        mvntp.MsgEulerPose,
		SampleCounter:      42,
		FragmentIndex:      0,
		IsLast:             true,
		ItemCount:          1,
		TimeCodeMs:         1000,
		CharacterID:        0,
		BodySegmentCount:   23,
		PropCount:          0,
		FingerSegmentCount: 0,
	}

	item := EulerPoseItem{
		SegmentID: 1,
		Position:  Vec3{X: 50.0, Y: 0, Z: 10.0},
		EulerXYZ:  Vec3{X: 0, Y: 173.0, Z: 0},
	}
	buf := EulerPose{Items: []EulerPoseItem{item}}.Encode()

	out, itemErrs, err := DecodeEulerPose(h, buf)
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, []EulerPoseItem{item}, out.Items)
}

func TestDecodeEulerPose_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgEulerPose)
	want := EulerPose{Items: []EulerPoseItem{
		{SegmentID: 1, Position: Vec3{X: 1, Y: 2, Z: 3}, EulerXYZ: Vec3{X: 4, Y: 5, Z: 6}},
		{SegmentID: 23, Position: Vec3{X: -1, Y: -2, Z: -3}, EulerXYZ: Vec3{X: 90, Y: 0, Z: -90}},
	}}

	out, itemErrs, err := DecodeEulerPose(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

func TestDecodeEulerPose_MisalignedPayload(t *testing.T) {
	_, _, err := DecodeEulerPose(defaultHeader(mvntp.MsgEulerPose), make([]byte, 10))
	require.ErrorIs(t, err, mvnerr.ErrMisalignedPayload)
}

func TestDecodeEulerPose_OutOfRangeSegmentIDIsItemError(t *testing.T) {
	h := defaultHeader(mvntp.MsgEulerPose)
	buf := EulerPose{Items: []EulerPoseItem{
		{SegmentID: 0, Position: Vec3{}, EulerXYZ: Vec3{}},
		{SegmentID: 5, Position: Vec3{}, EulerXYZ: Vec3{}},
	}}.Encode()

	out, itemErrs, err := DecodeEulerPose(h, buf)
	require.NoError(t, err)
	require.Len(t, itemErrs, 1)
	require.Equal(t, 0, itemErrs[0].ItemIndex)
	require.ErrorIs(t, itemErrs[0].Err, mvnerr.ErrSegmentOutOfRange)
	require.Len(t, out.Items, 1)
	require.Equal(t, uint32(5), out.Items[0].SegmentID)
}

func TestDecodeQuaternionPose_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgQuaternionPose)
	want := QuaternionPose{Items: []QuaternionPoseItem{
		{SegmentID: 1, Position: Vec3{X: 1, Y: 1, Z: 1}, Quat: Quat{W: 1, X: 0, Y: 0, Z: 0}},
	}}

	out, itemErrs, err := DecodeQuaternionPose(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

func TestDecodeUnity3DPose_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgUnity3DPose)
	want := Unity3DPose{Items: []QuaternionPoseItem{
		{SegmentID: 1, Position: Vec3{X: 2, Y: 2, Z: 2}, Quat: Quat{W: 1}},
	}}

	out, itemErrs, err := DecodeUnity3DPose(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

// S6: point ID worked example from spec §8.
func TestDecodePoints_S6WorkedExample(t *testing.T) {
	h := defaultHeader(mvntp.MsgPoints)

	buf256 := Points{Items: []PointItem{{PointID: 269, Position: Vec3{X: 1, Y: 2, Z: 3}}}}.Encode()
	out, itemErrs, err := DecodePoints(h, buf256, config.NewDecodeConfig(config.WithPointIDMultiplier(256)))
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, uint32(269), out.Items[0].PointID)

	buf100 := Points{Items: []PointItem{{PointID: 113, Position: Vec3{X: 1, Y: 2, Z: 3}}}}.Encode()
	out, itemErrs, err = DecodePoints(h, buf100, config.NewDecodeConfig(config.WithPointIDMultiplier(100)))
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, uint32(113), out.Items[0].PointID)
}

func TestDecodeMeta_ParsesTagValueLines(t *testing.T) {
	buf := []byte("name:Alice\nxmid:42\ncolor:FF00FF\ncustom:value:with:colons")
	m := DecodeMeta(buf)
	require.Equal(t, "Alice", m["name"])
	require.Equal(t, "42", m["xmid"])
	require.Equal(t, "FF00FF", m["color"])
	require.Equal(t, "value:with:colons", m["custom"])
}

func TestDecodeMeta_DuplicateTagLastWins(t *testing.T) {
	m := DecodeMeta([]byte("name:First\nname:Second"))
	require.Equal(t, "Second", m["name"])
}

func TestDecodeScale_SegmentsOnly(t *testing.T) {
	want := Scale{Segments: []ScaleSegmentItem{
		{Name: "Pelvis", Origin: Vec3{X: 1, Y: 2, Z: 3}},
	}}

	out, err := DecodeScale(want.Encode())
	require.NoError(t, err)
	require.Equal(t, want.Segments, out.Segments)
	require.Empty(t, out.Points)
}

func TestDecodeScale_PointsOnly(t *testing.T) {
	want := Scale{Points: []ScalePointItem{
		{SegmentID: 1, PointID: 13, Name: "Sacrum", Flags: 1, Offset: Vec3{X: 1}},
	}}

	out, err := DecodeScale(want.Encode())
	require.NoError(t, err)
	require.Empty(t, out.Segments)
	require.Equal(t, want.Points, out.Points)
}

func TestDecodeJointAngles_RoundTrip(t *testing.T) {
	want := JointAngles{Items: []JointAngleItem{
		{ParentPointID: 1, ChildPointID: 269, RotXYZDeg: Vec3{X: 1, Y: 2, Z: 3}},
	}}

	out, err := DecodeJointAngles(want.Encode())
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestDecodeLinearKinematics_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgLinearKinematics)
	want := LinearKinematics{Items: []LinearKinematicsItem{
		{SegmentID: 1, Position: Vec3{X: 1}, Velocity: Vec3{Y: 1}, Acceleration: Vec3{Z: 1}},
	}}

	out, itemErrs, err := DecodeLinearKinematics(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

func TestDecodeAngularKinematics_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgAngularKinematics)
	want := AngularKinematics{Items: []AngularKinematicsItem{
		{SegmentID: 1, Quat: Quat{W: 1}, AngularVelocity: Vec3{X: 1}, AngularAcceleration: Vec3{Y: 1}},
	}}

	out, itemErrs, err := DecodeAngularKinematics(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

func TestDecodeTrackerKinematics_RoundTrip(t *testing.T) {
	h := defaultHeader(mvntp.MsgTrackerKinematics)
	want := TrackerKinematics{Items: []TrackerKinematicsItem{
		{SegmentID: 1, Quat: Quat{W: 1}, FreeAcceleration: Vec3{X: 1}, MagneticField: Vec3{Y: 1}},
	}}

	out, itemErrs, err := DecodeTrackerKinematics(h, want.Encode())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, want, out)
}

func TestDecodeCenterOfMass_RoundTrip(t *testing.T) {
	want := CenterOfMass{Position: Vec3{X: 1, Y: 2, Z: 3}}

	out, err := DecodeCenterOfMass(want.Encode())
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestDecodeCenterOfMass_WrongSizeIsMisaligned(t *testing.T) {
	_, err := DecodeCenterOfMass(make([]byte, 11))
	require.ErrorIs(t, err, mvnerr.ErrMisalignedPayload)
}

func TestDecodeTimeCode_ValidPattern(t *testing.T) {
	out, err := DecodeTimeCode([]byte("01:02:03.456"))
	require.NoError(t, err)
	require.Equal(t, "01:02:03.456", out.Value)
}

func TestDecodeTimeCode_InvalidPatternRejected(t *testing.T) {
	_, err := DecodeTimeCode([]byte("01-02-03.456"))
	require.ErrorIs(t, err, mvnerr.ErrInvalidTimeCode)
}

func TestDecode_DispatchesByMessageType(t *testing.T) {
	h := defaultHeader(mvntp.MsgCenterOfMass)
	buf := CenterOfMass{Position: Vec3{X: 1}}.Encode()

	out, itemErrs, err := Decode(h, buf, config.DefaultDecodeConfig())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Equal(t, CenterOfMass{Position: Vec3{X: 1}}, out)
}

func TestDecode_UnsupportedMessageType(t *testing.T) {
	h := defaultHeader(mvntp.MessageType(99))

	_, _, err := Decode(h, nil, config.DefaultDecodeConfig())
	require.ErrorIs(t, err, mvnerr.ErrUnsupportedMessageType)
}

func TestDecode_DeprecatedTypesAreUnsupported(t *testing.T) {
	for _, mt := range []mvntp.MessageType{4, 10, 11} {
		_, _, err := Decode(defaultHeader(mt), nil, config.DefaultDecodeConfig())
		require.ErrorIs(t, err, mvnerr.ErrUnsupportedMessageType)
	}
}
