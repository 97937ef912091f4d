// Package wire implements the zero-copy FIX tag/value codec: a reusable
// Decoder that turns a raw byte buffer into an ordered offset table, a
// Message view over that table with lazy tag lookup and integrity
// validation, a repeating-group segmentation engine, and a reusable Encoder
// that reassembles wire bytes.
package wire

import (
	"bytes"
	"math"

	"github.com/fastfix-go/fastfix/errs"
)

// defaultTableCapacity covers typical FIX messages without regrowing the
// offset table.
const defaultTableCapacity = 32

// fieldOffset locates one field's value inside the decoded buffer.
// start is the byte immediately after '='; end is the terminating SOH
// (exclusive). The value is recovered as buf[start:end].
type fieldOffset struct {
	tag   uint32
	start uint32
	end   uint32
}

// Decoder is a reusable FIX message decoder.
//
// It owns an offset table that is allocated once and reused across every
// Decode call: the table is cleared (length reset, capacity retained) at the
// start of each call, so the steady-state path performs no allocation.
//
// A Decoder is safe for sequential reuse by a single owner. It is not safe
// for concurrent use; the intended pattern is one Decoder per worker or
// connection.
type Decoder struct {
	offsets []fieldOffset
	idx     tagIndex
	msg     Message
}

// NewDecoder creates a decoder with the default table capacity.
func NewDecoder() *Decoder {
	return NewDecoderWithCapacity(defaultTableCapacity)
}

// NewDecoderWithCapacity creates a decoder pre-allocated for capacity
// fields. Use this when messages consistently exceed the default (e.g.
// market data snapshots).
func NewDecoderWithCapacity(capacity int) *Decoder {
	return &Decoder{
		offsets: make([]fieldOffset, 0, capacity),
	}
}

// Decode parses a raw FIX byte buffer into a Message.
//
// The returned Message borrows both the internal offset table and buf: it is
// valid only until the next Decode call on the same Decoder. Callers that
// need a message beyond that point must extract the field values first.
// This is the same single-owner discipline the Encoder follows; Go cannot
// enforce it structurally, so it is a documented contract.
//
// An empty buffer decodes successfully to a zero-field message. Values may
// contain arbitrary bytes, including '=' and SOH: each delimiter search
// starts strictly after the previous field's consumed region, so bytes
// inside an already-consumed value can never corrupt a later tag scan.
//
// Errors:
//   - errs.ErrIncompleteMessage: the buffer ends before a '=' or SOH is
//     found. Buffer more bytes and decode again from scratch; this is the
//     expected outcome for partial stream reads.
//   - errs.ErrInvalidTag: a tag is empty, contains a non-digit byte, or
//     overflows uint32.
func (d *Decoder) Decode(buf []byte) (*Message, error) {
	// Length reset only; capacity survives across calls.
	d.offsets = d.offsets[:0]

	pos := 0
	for pos < len(buf) {
		eq := bytes.IndexByte(buf[pos:], TagValueSeparator)
		if eq < 0 {
			return nil, errs.ErrIncompleteMessage
		}
		eq += pos

		tag, err := parseTag(buf[pos:eq])
		if err != nil {
			return nil, err
		}

		// The SOH search starts after '=', so a '=' inside this value
		// cannot be confused with the next field's separator.
		soh := bytes.IndexByte(buf[eq+1:], FieldTerminator)
		if soh < 0 {
			return nil, errs.ErrIncompleteMessage
		}
		soh += eq + 1

		d.offsets = append(d.offsets, fieldOffset{
			tag:   tag,
			start: uint32(eq + 1),
			end:   uint32(soh),
		})

		pos = soh + 1
	}

	d.idx.reset()
	d.msg = Message{
		buf:     buf,
		offsets: d.offsets,
		idx:     &d.idx,
	}

	return &d.msg, nil
}

// parseTag parses a non-empty run of ASCII digits fitting in uint32.
func parseTag(b []byte) (uint32, error) {
	if len(b) == 0 {
		return 0, errs.ErrInvalidTag
	}

	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, errs.ErrInvalidTag
		}
		n = n*10 + uint64(c-'0')
		if n > math.MaxUint32 {
			return 0, errs.ErrInvalidTag
		}
	}

	return uint32(n), nil
}
