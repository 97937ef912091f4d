package wire

import (
	"unicode/utf8"

	"github.com/fastfix-go/fastfix/errs"
)

const (
	// FieldTerminator is the SOH control byte that ends every field on the wire.
	FieldTerminator byte = 0x01

	// TagValueSeparator separates the decimal tag from the raw value bytes.
	TagValueSeparator byte = '='

	// TerminatorDisplay substitutes for SOH in logs and test literals only.
	TerminatorDisplay byte = '|'
)

// Field is a transient view of one decoded field: the numeric tag and the
// raw value bytes. Value is a sub-slice of the decoded buffer; nothing is
// copied. A Field is reconstructed on demand from the offset table and is
// never stored by the library.
type Field struct {
	Tag   uint32
	Value []byte
}

// String interprets the value as UTF-8 text.
//
// Returns errs.ErrInvalidUTF8 if the value contains invalid UTF-8 sequences.
func (f Field) String() (string, error) {
	if !utf8.Valid(f.Value) {
		return "", errs.ErrInvalidUTF8
	}

	return string(f.Value), nil
}

// Uint interprets the value as an unsigned ASCII decimal.
//
// Returns errs.ErrInvalidValue if the value is empty, contains non-digit
// bytes, or overflows uint64.
func (f Field) Uint() (uint64, error) {
	if len(f.Value) == 0 {
		return 0, errs.ErrInvalidValue
	}

	var n uint64
	for _, c := range f.Value {
		if c < '0' || c > '9' {
			return 0, errs.ErrInvalidValue
		}
		d := uint64(c - '0')
		if n > (^uint64(0)-d)/10 {
			return 0, errs.ErrInvalidValue
		}
		n = n*10 + d
	}

	return n, nil
}

// Int interprets the value as a signed ASCII decimal with an optional
// leading '-'.
//
// Returns errs.ErrInvalidValue on malformed input or overflow.
func (f Field) Int() (int64, error) {
	v := f.Value
	neg := false
	if len(v) > 0 && v[0] == '-' {
		neg = true
		v = v[1:]
	}

	u, err := (Field{Value: v}).Uint()
	if err != nil {
		return 0, err
	}

	if neg {
		if u > 1<<63 {
			return 0, errs.ErrInvalidValue
		}

		return -int64(u), nil
	}
	if u > 1<<63-1 {
		return 0, errs.ErrInvalidValue
	}

	return int64(u), nil
}
