package compress

// NoOpCodec bypasses compression entirely. Useful for debugging a
// recording by reading the JSONL directly off disk.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
