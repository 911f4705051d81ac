package format

import (
	"path/filepath"
	"strings"
)

type (
	CompressionType uint8
	OutputType      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	OutputSVG  OutputType = 0x1 // OutputSVG renders a vector image.
	OutputPNG  OutputType = 0x2 // OutputPNG renders a raster image.
	OutputJSON OutputType = 0x3 // OutputJSON emits the frame for an external front-end.
	OutputText OutputType = 0x4 // OutputText renders a terminal chart.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file suffix used for the compression type, including the dot.
// CompressionNone and unknown types return an empty string.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression maps a codec name ("none", "zstd", "s2", "lz4") to its type.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// CompressionFromPath infers the compression type from a file name suffix.
// Unrecognised suffixes are treated as uncompressed.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

func (o OutputType) String() string {
	switch o {
	case OutputSVG:
		return "SVG"
	case OutputPNG:
		return "PNG"
	case OutputJSON:
		return "JSON"
	case OutputText:
		return "Text"
	default:
		return "Unknown"
	}
}

// ParseOutput maps a format name ("svg", "png", "json", "text") to its type.
func ParseOutput(name string) (OutputType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "svg":
		return OutputSVG, true
	case "png":
		return OutputPNG, true
	case "json":
		return OutputJSON, true
	case "text", "txt":
		return OutputText, true
	default:
		return 0, false
	}
}

// OutputFromPath infers the output type from a file name suffix, defaulting to SVG.
func OutputFromPath(path string) OutputType {
	if o, ok := ParseOutput(strings.TrimPrefix(filepath.Ext(path), ".")); ok {
		return o
	}

	return OutputSVG
}
