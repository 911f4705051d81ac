package compress

// ZstdCompressor provides Zstandard compression, the default for packed datasets.
//
// The implementation is selected at build time: pure Go by default, or the
// cgo gozstd binding with `-tags gozstd`.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
