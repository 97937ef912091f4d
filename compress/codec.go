// Package compress provides the block compression codecs used by the
// journal package. All codecs operate on whole blocks; there is no
// streaming mode.
package compress

import (
	"fmt"

	"github.com/fastfix-go/fastfix/errs"
)

// Type identifies a compression codec. The numeric values are persisted in
// journal block headers and must not be renumbered.
type Type byte

const (
	// TypeNone stores blocks uncompressed.
	TypeNone Type = 0
	// TypeS2 uses S2, an accelerated Snappy dialect. Best default for hot
	// capture paths: very fast with a reasonable ratio on FIX text.
	TypeS2 Type = 1
	// TypeLZ4 uses LZ4 block compression.
	TypeLZ4 Type = 2
	// TypeZstd uses Zstandard. Best ratio, slower than S2/LZ4; suited to
	// archival journals.
	TypeZstd Type = 3
)

// String returns the codec name used in error messages and tooling output.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	case TypeZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// Valid reports whether t names a known codec.
func (t Type) Valid() bool {
	return t <= TypeZstd
}

// Compressor compresses whole blocks.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified. Implementations may reuse internal scratch state and
// must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor. Corrupted or mismatched input
// yields an error, never a partial result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
	TypeZstd: NewZstdCodec(),
}

// GetCodec returns the built-in Codec for t.
//
// Returns errs.ErrInvalidCompression for an unknown type, e.g. when a
// journal block header carries a codec byte from a newer version.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, t)
}
