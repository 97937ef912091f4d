// Package fastfix provides a zero-copy codec for the FIX tag/value wire
// format.
//
// The decoder turns a raw byte buffer into a flat table of field locations
// without copying or interpreting values; the resulting message view offers
// positional access, lazily indexed lookup by tag, integrity validation,
// and segmentation of repeating groups including arbitrary nesting. The
// encoder reassembles wire bytes with the BodyLength and CheckSum fields
// recomputed or passed through verbatim.
//
// # Basic Usage
//
// Decoding and field lookup:
//
//	import "github.com/fastfix-go/fastfix"
//
//	dec := fastfix.NewDecoder()
//	msg, err := dec.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	if v, ok := msg.Find(fastfix.TagMsgType); ok {
//	    fmt.Printf("MsgType=%s\n", v)
//	}
//
// Repeating groups:
//
//	it := msg.Groups(dict.MDEntries)
//	for {
//	    entry, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    px, _ := entry.Find(dict.MDEntryPx)
//	    fmt.Printf("px=%s\n", px)
//	}
//
// Re-encoding:
//
//	enc, _ := fastfix.NewEncoder()
//	out, err := enc.Encode(msg, nil)
//
// # Package Structure
//
// This package re-exports the most common entry points of the wire package.
// The full API lives in the sub-packages: wire (decoder, message, groups,
// encoder), dict (tag constants and group schemas), journal (compressed
// capture log for raw messages), errs (sentinel errors) and compress (block
// codecs used by the journal).
package fastfix

import (
	"github.com/fastfix-go/fastfix/dict"
	"github.com/fastfix-go/fastfix/wire"
)

// Re-exported wire types for the common decode/encode path.
type (
	Decoder   = wire.Decoder
	Encoder   = wire.Encoder
	Message   = wire.Message
	Field     = wire.Field
	Group     = wire.Group
	GroupIter = wire.GroupIter
)

// Well-known session tags, re-exported for callers that never touch the
// dict package directly.
const (
	TagBeginString = dict.BeginString
	TagBodyLength  = dict.BodyLength
	TagCheckSum    = dict.CheckSum
	TagMsgType     = dict.MsgType
)

// NewDecoder creates a message decoder with the default field-table
// capacity. See wire.NewDecoder.
func NewDecoder() *Decoder {
	return wire.NewDecoder()
}

// NewDecoderWithCapacity creates a message decoder pre-allocated for
// capacity fields. See wire.NewDecoderWithCapacity.
func NewDecoderWithCapacity(capacity int) *Decoder {
	return wire.NewDecoderWithCapacity(capacity)
}

// NewEncoder creates a message encoder. Both integrity fields default to
// recompute mode; see wire.NewEncoder for the options.
func NewEncoder(opts ...wire.EncoderOption) (*Encoder, error) {
	return wire.NewEncoder(opts...)
}
