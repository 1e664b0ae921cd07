package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"none": NoOpCodec{},
		"zstd": ZstdCodec{},
		"s2":   S2Codec{},
		"lz4":  LZ4Codec{},
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindNone, "none"},
		{KindZstd, "zstd"},
		{KindS2, "s2"},
		{KindLZ4, "lz4"},
		{Kind(0xFF), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.k.String())
	}
}

func TestNew(t *testing.T) {
	for _, k := range []Kind{KindNone, KindZstd, KindS2, KindLZ4} {
		codec, err := New(k)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := New(Kind(0xFF))
	require.Error(t, err)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	frames := [][]byte{
		[]byte(`{"character":0,"sample":1,"pose":"euler"}`),
		bytes.Repeat([]byte(`{"character":0,"sample":2}`+"\n"), 200),
		{},
	}

	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			for i, frame := range frames {
				t.Run(fmt.Sprintf("frame_%d", i), func(t *testing.T) {
					compressed, err := codec.Compress(frame)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.True(t, bytes.Equal(frame, decompressed))
				})
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}
