package wire

import (
	"strconv"

	"github.com/fastfix-go/fastfix/dict"
	"github.com/fastfix-go/fastfix/internal/options"
	"github.com/fastfix-go/fastfix/internal/pool"
)

// DefaultVersion is the BeginString written when the source message carries
// no tag 8.
const DefaultVersion = dict.VersionFIX44

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// WithAutoBodyLength controls whether Encode recomputes BodyLength (tag 9).
// When disabled the message's own tag 9 value is copied verbatim, or the
// field is omitted if the message has none. Enabled by default.
func WithAutoBodyLength(enable bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.autoBodyLength = enable
	})
}

// WithAutoCheckSum controls whether Encode recomputes CheckSum (tag 10).
// When disabled the message's own tag 10 value is copied verbatim, or the
// field is omitted if the message has none. Enabled by default.
func WithAutoCheckSum(enable bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.autoCheckSum = enable
	})
}

// WithBodyCapacity pre-grows the scratch body buffer for messages of a
// known typical size.
func WithBodyCapacity(capacity int) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.body.Grow(capacity)
	})
}

// Encoder is a reusable FIX message encoder.
//
// It owns a scratch body buffer that is allocated once and reused across
// every Encode call, so the steady-state path performs no allocation. Like
// Decoder, an Encoder is safe for sequential reuse by a single owner only.
type Encoder struct {
	body           *pool.ByteBuffer
	autoBodyLength bool
	autoCheckSum   bool
}

// NewEncoder creates an encoder with both integrity fields in recompute
// mode. The scratch buffer comes from the shared message pool; call Release
// when the encoder is permanently done to return it.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		body:           pool.GetMessageBuffer(),
		autoBodyLength: true,
		autoCheckSum:   true,
	}
	if err := options.Apply(e, opts...); err != nil {
		pool.PutMessageBuffer(e.body)
		return nil, err
	}
	return e, nil
}

// Release returns the scratch buffer to the message pool. The encoder must
// not be used afterwards.
func (e *Encoder) Release() {
	pool.PutMessageBuffer(e.body)
	e.body = nil
}

// SetAutoBodyLength switches BodyLength recomputation on or off. Takes
// effect on the next Encode call.
func (e *Encoder) SetAutoBodyLength(enable bool) {
	e.autoBodyLength = enable
}

// SetAutoCheckSum switches CheckSum recomputation on or off. Takes effect
// on the next Encode call.
func (e *Encoder) SetAutoCheckSum(enable bool) {
	e.autoCheckSum = enable
}

// Encode renders msg as a complete wire message appended to out[:0] and
// returns the extended slice. Passing the previous result back in reuses
// its capacity.
//
// The BeginString (tag 8) value is taken from the message, falling back to
// DefaultVersion when absent. The body holds every message field except
// tags 8, 9 and 10, in original wire order. BodyLength and CheckSum are
// then written according to the auto switches: recomputed from the actual
// output bytes, or copied verbatim from the message's own fields. A
// verbatim value is written even when it is wrong for the new body; with
// auto off, caller-declared metadata is never corrected.
func (e *Encoder) Encode(msg *Message, out []byte) ([]byte, error) {
	version := []byte(DefaultVersion)
	if v, ok := msg.Find(dict.BeginString); ok {
		version = v
	}

	e.body.Reset()
	for f := range msg.All() {
		switch f.Tag {
		case dict.BeginString, dict.BodyLength, dict.CheckSum:
			continue
		}
		e.body.B = strconv.AppendUint(e.body.B, uint64(f.Tag), 10)
		e.body.B = append(e.body.B, TagValueSeparator)
		e.body.B = append(e.body.B, f.Value...)
		e.body.B = append(e.body.B, FieldTerminator)
	}

	out = out[:0]

	out = append(out, '8', TagValueSeparator)
	out = append(out, version...)
	out = append(out, FieldTerminator)

	if e.autoBodyLength {
		out = append(out, '9', TagValueSeparator)
		out = strconv.AppendInt(out, int64(e.body.Len()), 10)
		out = append(out, FieldTerminator)
	} else if v, ok := msg.Find(dict.BodyLength); ok {
		out = append(out, '9', TagValueSeparator)
		out = append(out, v...)
		out = append(out, FieldTerminator)
	}

	out = append(out, e.body.B...)

	if e.autoCheckSum {
		out = appendCheckSum(out, computeCheckSum(out))
	} else if v, ok := msg.Find(dict.CheckSum); ok {
		out = append(out, '1', '0', TagValueSeparator)
		out = append(out, v...)
		out = append(out, FieldTerminator)
	}

	return out, nil
}

// appendCheckSum writes the trailing checksum field with a 3-digit
// zero-padded value.
func appendCheckSum(out []byte, sum byte) []byte {
	out = append(out, '1', '0', TagValueSeparator)
	out = append(out, '0'+sum/100, '0'+sum/10%10, '0'+sum%10)
	return append(out, FieldTerminator)
}
