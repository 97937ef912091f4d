package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastfix-go/fastfix/errs"
)

func TestEncoder_RoundTrip(t *testing.T) {
	// A message with already-correct integrity fields reproduces its wire
	// bytes exactly.
	raw := fix("8=FIX.4.2|9=5|35=D|10=181|")

	dec := NewDecoder()
	msg, err := dec.Decode(raw)
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestEncoder_RecomputesIntegrityFields(t *testing.T) {
	// Stale declared values are replaced; re-decoding the output validates
	// cleanly.
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|9=999|35=D|49=SENDER|56=TARGET|10=000|"))
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)

	dec2 := NewDecoder()
	msg2, err := dec2.Decode(out)
	require.NoError(t, err)
	require.NoError(t, msg2.ValidateBodyLength())
	require.NoError(t, msg2.ValidateCheckSum())
}

func TestEncoder_IdempotentReencode(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|9=999|35=D|10=000|"))
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	first, err := enc.Encode(msg, nil)
	require.NoError(t, err)

	msg2, err := dec.Decode(first)
	require.NoError(t, err)
	second, err := enc.Encode(msg2, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncoder_MissingVersionDefaultsToFIX44(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("35=D|"))
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.True(t, len(out) > 10)
	require.Equal(t, fix("8=FIX.4.4|"), out[:10])

	dec2 := NewDecoder()
	msg2, err := dec2.Decode(out)
	require.NoError(t, err)
	require.NoError(t, msg2.ValidateBodyLength())
	require.NoError(t, msg2.ValidateCheckSum())
}

func TestEncoder_TruncatesOutput(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=181|"))
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, []byte("stale_data"))
	require.NoError(t, err)
	require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=181|"), out)
}

func TestEncoder_Reuse(t *testing.T) {
	dec := NewDecoder()
	enc, err := NewEncoder()
	require.NoError(t, err)

	msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=181|"))
	require.NoError(t, err)
	out1, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=181|"), out1)

	msg, err = dec.Decode(fix("8=FIX.4.2|9=999|35=D|49=SENDER|56=TARGET|10=000|"))
	require.NoError(t, err)
	out2, err := enc.Encode(msg, nil)
	require.NoError(t, err)

	dec2 := NewDecoder()
	msg2, err := dec2.Decode(out2)
	require.NoError(t, err)
	require.NoError(t, msg2.ValidateBodyLength())
	require.NoError(t, msg2.ValidateCheckSum())

	enc.Release()
}

func TestEncoder_WithBodyCapacity(t *testing.T) {
	enc, err := NewEncoder(WithBodyCapacity(8 * 1024))
	require.NoError(t, err)
	defer enc.Release()

	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=181|"))
	require.NoError(t, err)

	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=181|"), out)
}

func TestEncoder_ChecksumZeroPadded(t *testing.T) {
	// An empty body with BeginString "A" sums to a small value; the
	// checksum field must still be three digits.
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=A|"))
	require.NoError(t, err)

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)

	dec2 := NewDecoder()
	msg2, err := dec2.Decode(out)
	require.NoError(t, err)
	v, ok := msg2.Find(10)
	require.True(t, ok)
	require.Len(t, v, 3)
	require.NoError(t, msg2.ValidateCheckSum())
}

func TestEncoder_AutoBodyLengthDisabled(t *testing.T) {
	enc, err := NewEncoder(WithAutoBodyLength(false))
	require.NoError(t, err)
	dec := NewDecoder()

	t.Run("verbatim passthrough of wrong value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=999|35=D|10=181|"))
		require.NoError(t, err)
		out, err := enc.Encode(msg, nil)
		require.NoError(t, err)

		dec2 := NewDecoder()
		msg2, err := dec2.Decode(out)
		require.NoError(t, err)
		v, ok := msg2.Find(9)
		require.True(t, ok)
		require.Equal(t, []byte("999"), v)
		require.ErrorIs(t, msg2.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})

	t.Run("omitted when source has none", func(t *testing.T) {
		msg, err := dec.Decode(fix("35=D|"))
		require.NoError(t, err)
		out, err := enc.Encode(msg, nil)
		require.NoError(t, err)

		dec2 := NewDecoder()
		msg2, err := dec2.Decode(out)
		require.NoError(t, err)
		_, ok := msg2.Find(9)
		require.False(t, ok)
	})
}

func TestEncoder_AutoCheckSumDisabled(t *testing.T) {
	enc, err := NewEncoder(WithAutoCheckSum(false))
	require.NoError(t, err)
	dec := NewDecoder()

	t.Run("verbatim passthrough of wrong value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=000|"))
		require.NoError(t, err)
		out, err := enc.Encode(msg, nil)
		require.NoError(t, err)
		require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=000|"), out)
	})

	t.Run("omitted when source has none", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|35=D|"))
		require.NoError(t, err)
		out, err := enc.Encode(msg, nil)
		require.NoError(t, err)
		require.Equal(t, fix("8=FIX.4.2|9=5|35=D|"), out)
	})
}

func TestEncoder_SwitchesToggleBetweenCalls(t *testing.T) {
	raw := fix("8=FIX.4.2|9=999|35=D|10=000|")
	dec := NewDecoder()
	enc, err := NewEncoder()
	require.NoError(t, err)

	msg, err := dec.Decode(raw)
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=181|"), out)

	enc.SetAutoBodyLength(false)
	enc.SetAutoCheckSum(false)
	msg, err = dec.Decode(raw)
	require.NoError(t, err)
	out, err = enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, raw, out)

	enc.SetAutoBodyLength(true)
	enc.SetAutoCheckSum(true)
	msg, err = dec.Decode(raw)
	require.NoError(t, err)
	out, err = enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, fix("8=FIX.4.2|9=5|35=D|10=181|"), out)
}
