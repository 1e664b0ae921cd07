package compress

// ZstdCodec provides Zstandard compression for archived recordings, where
// the best ratio matters more than encode latency. The methods live in
// zstd_pure.go (pure Go, klauspost/compress/zstd), which is built whether
// or not cgo is enabled; the alternate zstd_cgo.go (cgo, valyala/gozstd)
// sits behind the nobuild tag and is never compiled.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
