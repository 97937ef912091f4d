package journal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/fastfix-go/fastfix/compress"
	"github.com/fastfix-go/fastfix/errs"
)

// Reader replays a journal stream message by message.
//
// Blocks are loaded, decompressed and hash-verified lazily as Next advances
// through the stream. A Reader is not safe for concurrent use.
type Reader struct {
	r io.Reader

	// Current decompressed block and the cursor into it.
	block  []byte
	pos    int
	frames uint32 // frames left in the current block
	hdr    [blockHeaderSize]byte
}

// NewReader creates a journal reader on top of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next recorded message.
//
// The returned slice points into the reader's current decompressed block
// and is valid until the Next call that crosses into the following block;
// copy it to retain it longer. Returns io.EOF at a clean end of stream and
// errs.ErrJournalCorrupted when a block fails structural or hash
// verification.
func (r *Reader) Next() ([]byte, error) {
	for r.frames == 0 {
		if err := r.loadBlock(); err != nil {
			return nil, err
		}
	}

	size, n := binary.Uvarint(r.block[r.pos:])
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad frame length at block offset %d", errs.ErrJournalCorrupted, r.pos)
	}
	start := r.pos + n
	end := start + int(size)
	if uint64(end-start) != size || end > len(r.block) {
		return nil, fmt.Errorf("%w: frame overruns block", errs.ErrJournalCorrupted)
	}

	r.pos = end
	r.frames--
	if r.frames == 0 && r.pos != len(r.block) {
		return nil, fmt.Errorf("%w: trailing bytes in block", errs.ErrJournalCorrupted)
	}

	return r.block[start:end], nil
}

// All returns an iterator over the remaining messages as (message, error)
// pairs. A clean end of stream ends the sequence without yielding; any
// other error is yielded once and ends it. The yielded slices follow the
// same block-lifetime rule as Next.
func (r *Reader) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			msg, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// loadBlock reads, decompresses and verifies the next block.
func (r *Reader) loadBlock() error {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		// A torn header means the stream was truncated mid-block.
		return fmt.Errorf("%w: truncated block header: %v", errs.ErrJournalCorrupted, err)
	}

	if !bytes.Equal(r.hdr[0:4], blockMagic[:]) {
		return fmt.Errorf("%w: bad block magic", errs.ErrJournalCorrupted)
	}

	codecType := compress.Type(r.hdr[4])
	frames := binary.LittleEndian.Uint32(r.hdr[5:9])
	rawLen := binary.LittleEndian.Uint32(r.hdr[9:13])
	rawHash := binary.LittleEndian.Uint64(r.hdr[13:21])
	compLen := binary.LittleEndian.Uint32(r.hdr[21:25])

	if frames == 0 {
		return fmt.Errorf("%w: empty block", errs.ErrJournalCorrupted)
	}

	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrJournalCorrupted, err)
	}

	compressed := make([]byte, compLen)
	if _, err := io.ReadFull(r.r, compressed); err != nil {
		return fmt.Errorf("%w: truncated block payload: %v", errs.ErrJournalCorrupted, err)
	}

	raw, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrJournalCorrupted, err)
	}
	if uint32(len(raw)) != rawLen {
		return fmt.Errorf("%w: payload length mismatch: got %d, header says %d",
			errs.ErrJournalCorrupted, len(raw), rawLen)
	}
	if xxhash.Sum64(raw) != rawHash {
		return fmt.Errorf("%w: payload hash mismatch", errs.ErrJournalCorrupted)
	}

	r.block = raw
	r.pos = 0
	r.frames = frames

	return nil
}
