// Package snapshot persists matrix values to a self-describing binary
// container and restores them.
//
// What:
//
//   - Save writes a matrix to an io.Writer: a fixed header (magic,
//     format version, codec name, compression name) followed by one
//     compressed payload block. Only the written prefix of the backing
//     store travels; the guaranteed-default tail is reconstructed from
//     the recorded default value and sparse extent.
//   - Load reads the container back, selecting codec and compression by
//     the names recorded in the header, and rebuilds an equivalent
//     matrix value.
//
// Why:
//
//   - The container records its own codec and compression, so files
//     written under one configuration keep loading after defaults
//     change. Changing a codec is a breaking-change boundary for
//     persisted bytes, never for the API.
//
// Codecs: "json" (encoding/json) and "go-json" (goccy). Compression:
// none, LZ4 block, zstd.
//
// Errors:
//
//   - ErrBadMagic: the input is not a snapshot container.
//   - ErrBadVersion: the container format version is unsupported.
//   - ErrUnknownCodec / ErrUnknownCompression: header names no built-in.
//   - ErrCorrupted: payload fails structural validation after decode.
package snapshot
