package journal

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/fastfix-go/fastfix/compress"
	"github.com/fastfix-go/fastfix/errs"
	"github.com/fastfix-go/fastfix/internal/options"
	"github.com/fastfix-go/fastfix/internal/pool"
)

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*Writer]

// WithCompression selects the block codec. The default is S2.
func WithCompression(t compress.Type) WriterOption {
	return options.New(func(w *Writer) error {
		codec, err := compress.GetCodec(t)
		if err != nil {
			return err
		}
		w.codecType = t
		w.codec = codec

		return nil
	})
}

// WithBlockSize sets the uncompressed payload size that triggers a block
// flush. The default is DefaultBlockSize.
func WithBlockSize(size int) WriterOption {
	return options.New(func(w *Writer) error {
		if size <= 0 {
			return fmt.Errorf("block size must be positive, got %d", size)
		}
		w.blockSize = size

		return nil
	})
}

// Writer appends raw FIX messages to an underlying stream in compressed,
// hash-protected blocks.
//
// Append buffers messages until the current block reaches the configured
// size, then flushes it as one unit. Close flushes the partial tail block.
// A Writer is not safe for concurrent use; the capture path owns it
// exclusively, matching the one-instance-per-connection pattern of
// wire.Decoder.
type Writer struct {
	w         io.Writer
	codec     compress.Codec
	codecType compress.Type
	blockSize int
	buf       *pool.ByteBuffer
	scratch   [blockHeaderSize + binary.MaxVarintLen64]byte
	frames    uint32
	closed    bool
}

// NewWriter creates a journal writer on top of w.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	jw := &Writer{
		w:         w,
		codec:     compress.NewS2Codec(),
		codecType: compress.TypeS2,
		blockSize: DefaultBlockSize,
		buf:       pool.GetBlockBuffer(),
	}
	if err := options.Apply(jw, opts...); err != nil {
		pool.PutBlockBuffer(jw.buf)
		return nil, err
	}

	return jw, nil
}

// Append adds one raw message to the journal. The bytes are copied
// immediately; msg may be reused by the caller as soon as Append returns.
func (w *Writer) Append(msg []byte) error {
	if w.closed {
		return errs.ErrJournalClosed
	}

	n := binary.PutUvarint(w.scratch[:], uint64(len(msg)))
	if _, err := w.buf.Write(w.scratch[:n]); err != nil {
		return err
	}
	if _, err := w.buf.Write(msg); err != nil {
		return err
	}
	w.frames++

	if w.buf.Len() >= w.blockSize {
		return w.Flush()
	}

	return nil
}

// Flush writes the buffered messages as one block. A writer with no
// buffered messages flushes to nothing.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrJournalClosed
	}
	if w.frames == 0 {
		return nil
	}

	raw := w.buf.Bytes()
	compressed, err := w.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress journal block: %w", err)
	}

	hdr := w.scratch[:blockHeaderSize]
	copy(hdr[0:4], blockMagic[:])
	hdr[4] = byte(w.codecType)
	binary.LittleEndian.PutUint32(hdr[5:9], w.frames)
	binary.LittleEndian.PutUint32(hdr[9:13], uint32(len(raw)))
	binary.LittleEndian.PutUint64(hdr[13:21], xxhash.Sum64(raw))
	binary.LittleEndian.PutUint32(hdr[21:25], uint32(len(compressed)))

	if _, err := w.w.Write(hdr); err != nil {
		return fmt.Errorf("write journal block header: %w", err)
	}
	if _, err := w.w.Write(compressed); err != nil {
		return fmt.Errorf("write journal block payload: %w", err)
	}

	w.buf.Reset()
	w.frames = 0

	return nil
}

// Close flushes the tail block and releases the writer's block buffer. The
// underlying stream is not closed; the caller owns it. Append and Flush
// fail after Close.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	err := w.Flush()
	w.closed = true
	pool.PutBlockBuffer(w.buf)
	w.buf = nil

	return err
}
