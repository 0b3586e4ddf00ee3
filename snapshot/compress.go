// SPDX-License-Identifier: MIT

// Payload compression. One block per container:
// [uncompressed size u32][stored size u32][bytes]. A stored size of 0
// marks an uncompressed block (compression declined or not worthwhile).

package snapshot

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression scheme.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = iota
	// CompressionLZ4 uses LZ4 block compression: fast, modest ratio.
	CompressionLZ4
	// CompressionZstd uses zstd: better ratio, still cheap to decode.
	CompressionZstd
)

// compressionName maps a scheme to its stable header name.
func compressionName(c Compression) (string, bool) {
	switch c {
	case CompressionNone:
		return "none", true
	case CompressionLZ4:
		return "lz4", true
	case CompressionZstd:
		return "zstd", true
	default:
		return "", false
	}
}

// compressionByName is the inverse of compressionName.
func compressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd":
		return CompressionZstd, true
	default:
		return 0, false
	}
}

// compressBlock compresses data under c. The second return value is
// false when the block should be stored raw (scheme is none, or the
// compressed form is not smaller).
func compressBlock(data []byte, c Compression) ([]byte, bool, error) {
	switch c {
	case CompressionNone:
		return data, false, nil

	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, false, fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		if n == 0 || n >= len(data) {
			return data, false, nil // incompressible
		}
		return buf[:n], true, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, false, fmt.Errorf("snapshot: zstd encoder: %w", err)
		}
		defer enc.Close()
		out := enc.EncodeAll(data, nil)
		if len(out) >= len(data) {
			return data, false, nil
		}
		return out, true, nil

	default:
		return nil, false, ErrUnknownCompression
	}
}

// decompressBlock restores a block of uncompressedSize bytes.
func decompressBlock(data []byte, c Compression, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4 decompress: %w", err)
		}
		if n != uncompressedSize {
			return nil, ErrCorrupted
		}
		return out, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd decompress: %w", err)
		}
		if len(out) != uncompressedSize {
			return nil, ErrCorrupted
		}
		return out, nil

	default:
		return nil, ErrUnknownCompression
	}
}
