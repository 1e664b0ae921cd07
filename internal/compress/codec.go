package compress

import "fmt"

// Kind identifies a session-recording compression algorithm.
type Kind uint8

const (
	KindNone Kind = iota
	KindZstd
	KindS2
	KindLZ4
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZstd:
		return "zstd"
	case KindS2:
		return "s2"
	case KindLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Codec compresses and decompresses recorded frame batches.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var builtin = map[Kind]Codec{
	KindNone: NoOpCodec{},
	KindZstd: ZstdCodec{},
	KindS2:   S2Codec{},
	KindLZ4:  LZ4Codec{},
}

// New returns the built-in Codec for kind.
func New(kind Kind) (Codec, error) {
	c, ok := builtin[kind]
	if !ok {
		return nil, fmt.Errorf("compress: unsupported kind %q", kind)
	}

	return c, nil
}
