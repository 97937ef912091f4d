// Package journal provides an append-only capture log for raw FIX
// messages. Messages are batched into blocks, each compressed as a unit and
// protected by an xxHash64 digest, so a capture file can be replayed later
// through the decoder with corruption detected at block granularity.
//
// The on-disk layout is a sequence of independent blocks:
//
//	magic     [4]byte  "FXJ1"
//	codec     byte     compress.Type
//	frames    uint32   number of messages in the block
//	rawLen    uint32   uncompressed payload length
//	rawHash   uint64   xxHash64 of the uncompressed payload
//	compLen   uint32   compressed payload length
//	payload   compLen bytes
//
// The payload is the concatenation of uvarint-length-prefixed messages.
// Integer fields are little-endian. The digest covers the uncompressed
// payload, so a codec mismatch is also caught as a hash failure.
package journal

// blockMagic starts every block. The trailing digit versions the layout.
var blockMagic = [4]byte{'F', 'X', 'J', '1'}

// blockHeaderSize is the fixed byte length of a block header.
const blockHeaderSize = 4 + 1 + 4 + 4 + 8 + 4

// DefaultBlockSize is the uncompressed payload size at which a block is
// flushed. Large enough to give the codecs real context, small enough to
// keep replay-after-corruption losses bounded.
const DefaultBlockSize = 256 * 1024
