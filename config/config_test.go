package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDecodeConfig(t *testing.T) {
	c := DefaultDecodeConfig()
	require.True(t, c.LenientLength)
	require.True(t, c.StrictMagic)
	require.Equal(t, 256, c.PointIDMultiplier)
}

func TestNewDecodeConfig_AppliesOptions(t *testing.T) {
	c := NewDecodeConfig(
		WithLenientLength(false),
		WithStrictMagic(false),
		WithPointIDMultiplier(100),
	)
	require.False(t, c.LenientLength)
	require.False(t, c.StrictMagic)
	require.Equal(t, 100, c.PointIDMultiplier)
}

func TestWithPointIDMultiplier_PanicsOnInvalidValue(t *testing.T) {
	require.Panics(t, func() {
		NewDecodeConfig(WithPointIDMultiplier(42))
	})
}

func TestDefaultReassemblerConfig(t *testing.T) {
	c := DefaultReassemblerConfig()
	require.Equal(t, uint32(64), c.WindowSamples)
	require.Equal(t, 8, c.CapacityPerCharacter)
	require.Equal(t, int64(500), c.TimeoutMs)
}

func TestNewReassemblerConfig_AppliesOptions(t *testing.T) {
	c := NewReassemblerConfig(
		WithWindowSamples(128),
		WithCapacityPerCharacter(4),
		WithTimeoutMs(1000),
	)
	require.Equal(t, uint32(128), c.WindowSamples)
	require.Equal(t, 4, c.CapacityPerCharacter)
	require.Equal(t, int64(1000), c.TimeoutMs)
}
