// Package compress provides the codecs healthplot uses for compressed dataset files.
//
// Survey extracts are small, but they are shipped alongside rendered charts and
// archived per release, so the loader accepts CSV files compressed with any of
// the supported algorithms and the pack command produces them:
//
//   - None: plain CSV
//   - Zstd: best ratio, the default for pack
//   - S2: fast with a good ratio
//   - LZ4: block format, fastest decompression
//
// The codec is chosen from the file suffix (see format.CompressionFromPath):
//
//	codec, err := compress.GetCodec(format.CompressionFromPath("data.csv.zst"))
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(payload)
//
// # Zstd Variants
//
// The default Zstd codec is pure Go (klauspost/compress). Building with
// `-tags gozstd` on a cgo-enabled toolchain swaps in the valyala/gozstd
// binding. Both produce standard Zstandard frames and are interchangeable.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Encoders and decoders are pooled.
//
// # LZ4 Framing
//
// The LZ4 codec writes raw blocks without a frame header, so files produced by
// the lz4 command-line tool are not readable by it. Use pack to produce them.
package compress
