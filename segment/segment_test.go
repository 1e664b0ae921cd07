package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameAt_DefaultOrder(t *testing.T) {
	require.Equal(t, "Pelvis", NameAt(OrderDefault, 0))
	require.Equal(t, "LeftToe", NameAt(OrderDefault, BodySegmentCount-1))
	require.Equal(t, "", NameAt(OrderDefault, BodySegmentCount))
	require.Equal(t, "", NameAt(OrderDefault, -1))
}

func TestNameAt_Unity3DOrderDiffersFromDefault(t *testing.T) {
	require.Equal(t, "Pelvis", NameAt(OrderUnity3D, 0))
	require.Equal(t, "RightUpperLeg", NameAt(OrderUnity3D, 1))
	require.NotEqual(t, NameAt(OrderDefault, 1), NameAt(OrderUnity3D, 1))
}

func TestPropIndexAndName(t *testing.T) {
	require.Equal(t, 25, PropIndex(2))
	require.Equal(t, "Prop2", PropName(2))
}

func TestPropIndex_PanicsOutsideRange(t *testing.T) {
	require.Panics(t, func() { PropIndex(0) })
	require.Panics(t, func() { PropIndex(5) })
}

func TestFingerIndices(t *testing.T) {
	require.Equal(t, FirstFingerIndex, LeftFingerIndex(0))
	require.Equal(t, FirstFingerIndex+FingersPerHand, RightFingerIndex(0))
}

func TestMaxSegmentIndex_BodyOnly(t *testing.T) {
	require.Equal(t, 22, MaxSegmentIndex(23, 0, 0))
}

func TestMaxSegmentIndex_WithPropsAndFingers(t *testing.T) {
	max := MaxSegmentIndex(23, 4, 40)
	require.Equal(t, RightFingerIndex(19), max)
}

func TestPointID_RoundTrip(t *testing.T) {
	for _, mult := range []int{100, 256} {
		id := PointID(3, 13, mult)
		seg, local := SplitPointID(id, mult)
		require.Equal(t, uint32(3), seg)
		require.Equal(t, uint32(13), local)
	}
}
