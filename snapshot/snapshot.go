// SPDX-License-Identifier: MIT

// Container layout, all integers little-endian:
//
//	magic   [4]byte  "PMAT"
//	version uint8    currently 1
//	codec   uint8 length + name bytes
//	scheme  uint8 length + name bytes
//	block   uint32 uncompressed size, uint32 stored size (0 = raw), bytes

package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/packmat/matrix"
)

var magic = [4]byte{'P', 'M', 'A', 'T'}

// Version is the container format version written by Save.
const Version = 1

// payload is the codec-encoded body. Cells carries only the written
// prefix (the first Extent cells); the tail is reconstructed from
// Default on load.
type payload[V comparable] struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Default V   `json:"default"`
	Extent  int `json:"extent"`
	Cells   []V `json:"cells"`
}

// Option configures Save. Load needs no options: containers are
// self-describing.
type Option func(*config)

type config struct {
	codec  Codec
	scheme Compression
}

// WithCodec selects the payload codec for newly written containers.
func WithCodec(c Codec) Option {
	return func(cfg *config) { cfg.codec = c }
}

// WithCompression selects the block compression scheme.
func WithCompression(c Compression) Option {
	return func(cfg *config) { cfg.scheme = c }
}

// Save writes m as one snapshot container to w.
func Save[V comparable](w io.Writer, m *matrix.Matrix[V], opts ...Option) error {
	cfg := config{codec: DefaultCodec, scheme: CompressionNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	schemeName, ok := compressionName(cfg.scheme)
	if !ok {
		return ErrUnknownCompression
	}

	ext := m.SparseExtent()
	p := payload[V]{
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		Default: m.Default(),
		Extent:  ext,
		Cells:   m.ToFlat()[:ext],
	}
	body, err := cfg.codec.Marshal(p)
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}
	block, compressed, err := compressBlock(body, cfg.scheme)
	if err != nil {
		return err
	}

	if _, err = w.Write(magic[:]); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if err = writeByte(w, Version); err != nil {
		return err
	}
	if err = writeName(w, cfg.codec.Name()); err != nil {
		return err
	}
	if err = writeName(w, schemeName); err != nil {
		return err
	}
	stored := uint32(len(block))
	if !compressed {
		stored = 0
	}
	if err = binary.Write(w, binary.LittleEndian, uint32(len(body))); err != nil {
		return fmt.Errorf("snapshot: write block sizes: %w", err)
	}
	if err = binary.Write(w, binary.LittleEndian, stored); err != nil {
		return fmt.Errorf("snapshot: write block sizes: %w", err)
	}
	if _, err = w.Write(block); err != nil {
		return fmt.Errorf("snapshot: write block: %w", err)
	}
	return nil
}

// Load reads one snapshot container from r and rebuilds the matrix.
func Load[V comparable](r io.Reader) (*matrix.Matrix[V], error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if head != magic {
		return nil, ErrBadMagic
	}
	version, err := readByte(r)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, ErrBadVersion
	}
	codecName, err := readName(r)
	if err != nil {
		return nil, err
	}
	codec, ok := ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}
	schemeName, err := readName(r)
	if err != nil {
		return nil, err
	}
	scheme, ok := compressionByName(schemeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, schemeName)
	}

	var uncompressed, stored uint32
	if err = binary.Read(r, binary.LittleEndian, &uncompressed); err != nil {
		return nil, fmt.Errorf("snapshot: read block sizes: %w", err)
	}
	if err = binary.Read(r, binary.LittleEndian, &stored); err != nil {
		return nil, fmt.Errorf("snapshot: read block sizes: %w", err)
	}
	size := stored
	if size == 0 {
		size = uncompressed
	}
	block := make([]byte, size)
	if _, err = io.ReadFull(r, block); err != nil {
		return nil, fmt.Errorf("snapshot: read block: %w", err)
	}
	body := block
	if stored != 0 {
		if body, err = decompressBlock(block, scheme, int(uncompressed)); err != nil {
			return nil, err
		}
	}

	var p payload[V]
	if err = codec.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("snapshot: decode payload: %w", err)
	}
	if p.Rows < 1 || p.Cols < 1 || p.Extent < 0 ||
		p.Extent > p.Rows*p.Cols || len(p.Cells) != p.Extent {
		return nil, ErrCorrupted
	}
	if p.Extent == 0 {
		return matrix.New(p.Rows, p.Cols, matrix.WithDefault(p.Default))
	}
	return matrix.FromFlat(p.Cells, p.Rows, p.Cols, matrix.WithDefault(p.Default))
}

func writeByte(w io.Writer, b byte) error {
	if _, err := w.Write([]byte{b}); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	return nil
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("snapshot: read header: %w", err)
	}
	return b[0], nil
}

func writeName(w io.Writer, name string) error {
	if len(name) > 255 {
		return fmt.Errorf("snapshot: name too long: %q", name)
	}
	if err := writeByte(w, byte(len(name))); err != nil {
		return err
	}
	if _, err := w.Write([]byte(name)); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	return nil
}

func readName(r io.Reader) (string, error) {
	n, err := readByte(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err = io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("snapshot: read header: %w", err)
	}
	return string(buf), nil
}
