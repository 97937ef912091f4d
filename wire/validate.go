package wire

import (
	"github.com/fastfix-go/fastfix/dict"
	"github.com/fastfix-go/fastfix/errs"
)

// checksumTagWidth is the width of the "10=" prefix that precedes the
// checksum value on the wire. The body-length and checksum regions both end
// there.
const checksumTagWidth = 3

// ValidateBodyLength checks the declared BodyLength (tag 9) against the
// actual byte span of the message body.
//
// FIX defines the body as everything after the SOH terminating tag 9, up to
// and including the SOH before the "10=" of the trailing checksum field.
// The validation therefore requires BodyLength to be the second field and
// CheckSum to be the last; any structural deviation, a non-numeric declared
// value, or a span mismatch yields errs.ErrInvalidBodyLength.
func (m *Message) ValidateBodyLength() error {
	if len(m.offsets) < 3 {
		return errs.ErrInvalidBodyLength
	}
	if m.offsets[1].tag != dict.BodyLength {
		return errs.ErrInvalidBodyLength
	}
	last := m.offsets[len(m.offsets)-1]
	if last.tag != dict.CheckSum {
		return errs.ErrInvalidBodyLength
	}

	declared, ok := parseDecimal(m.field(1).Value)
	if !ok {
		return errs.ErrInvalidBodyLength
	}

	bodyStart := uint64(m.offsets[1].end) + 1
	bodyEnd := uint64(last.start)
	if bodyEnd >= checksumTagWidth {
		bodyEnd -= checksumTagWidth
	} else {
		bodyEnd = 0
	}

	var actual uint64
	if bodyEnd > bodyStart {
		actual = bodyEnd - bodyStart
	}
	if actual != declared {
		return errs.ErrInvalidBodyLength
	}
	return nil
}

// ValidateCheckSum checks the declared CheckSum (tag 10) against the sum of
// all message bytes preceding the "10=" of the trailing checksum field,
// modulo 256.
//
// CheckSum must be the last field and its value must parse as a decimal in
// [0, 255]; otherwise, or on a sum mismatch, the result is
// errs.ErrInvalidCheckSum.
func (m *Message) ValidateCheckSum() error {
	if len(m.offsets) == 0 {
		return errs.ErrInvalidCheckSum
	}
	last := m.offsets[len(m.offsets)-1]
	if last.tag != dict.CheckSum {
		return errs.ErrInvalidCheckSum
	}

	declared, ok := parseDecimal(m.field(len(m.offsets) - 1).Value)
	if !ok || declared > 255 {
		return errs.ErrInvalidCheckSum
	}

	end := int(last.start) - checksumTagWidth
	if end < 0 {
		end = 0
	}
	if computeCheckSum(m.buf[:end]) != byte(declared) {
		return errs.ErrInvalidCheckSum
	}
	return nil
}

// computeCheckSum sums buf modulo 256.
func computeCheckSum(buf []byte) byte {
	var sum byte
	for _, b := range buf {
		sum += b
	}
	return sum
}

// parseDecimal parses a non-empty run of ASCII digits. Unlike parseTag it
// reports failure with a boolean so callers can attach their own sentinel.
func parseDecimal(b []byte) (uint64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (1<<64-1-uint64(c-'0'))/10 {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
	}
	return n, true
}
