package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastfix-go/fastfix/dict"
	"github.com/fastfix-go/fastfix/errs"
)

func TestMessage_Find(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|35=D|49=SENDER|56=TARGET|"))
	require.NoError(t, err)

	v, ok := msg.Find(35)
	require.True(t, ok)
	require.Equal(t, []byte("D"), v)

	v, ok = msg.Find(56)
	require.True(t, ok)
	require.Equal(t, []byte("TARGET"), v)

	_, ok = msg.Find(999)
	require.False(t, ok)
}

func TestMessage_Find_EmptyMessage(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(nil)
	require.NoError(t, err)

	_, ok := msg.Find(8)
	require.False(t, ok)
}

func TestMessage_Find_DuplicateTagReturnsFirst(t *testing.T) {
	// Duplicated tags are legal inside repeating groups; Find must resolve
	// to the first occurrence in wire order.
	dec := NewDecoder()
	msg, err := dec.Decode(fix("35=J|137=5.00|138=USD|137=2.50|138=EUR|"))
	require.NoError(t, err)

	v, ok := msg.Find(137)
	require.True(t, ok)
	require.Equal(t, []byte("5.00"), v)

	v, ok = msg.Find(138)
	require.True(t, ok)
	require.Equal(t, []byte("USD"), v)
}

func TestMessage_Find_RepeatedLookups(t *testing.T) {
	// The second and later lookups hit the sorted index rather than the
	// build path; results must be identical.
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|35=D|49=SENDER|"))
	require.NoError(t, err)

	for range 10 {
		v, ok := msg.Find(49)
		require.True(t, ok)
		require.Equal(t, []byte("SENDER"), v)
	}
}

func TestMessage_Find_IndexResetAcrossDecodes(t *testing.T) {
	dec := NewDecoder()

	msg, err := dec.Decode(fix("8=FIX.4.2|35=D|"))
	require.NoError(t, err)
	v, ok := msg.Find(35)
	require.True(t, ok)
	require.Equal(t, []byte("D"), v)

	// A fresh decode must invalidate the previous index.
	msg, err = dec.Decode(fix("35=8|58=hello|"))
	require.NoError(t, err)

	_, ok = msg.Find(8)
	require.False(t, ok)
	v, ok = msg.Find(58)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), v)
}

func TestMessage_FindField(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|35=D|"))
	require.NoError(t, err)

	f, ok := msg.FindField(35)
	require.True(t, ok)
	require.Equal(t, uint32(35), f.Tag)
	require.Equal(t, []byte("D"), f.Value)

	_, ok = msg.FindField(999)
	require.False(t, ok)
}

func TestMessage_All(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|35=D|49=SENDER|"))
	require.NoError(t, err)

	var tags []uint32
	for f := range msg.All() {
		tags = append(tags, f.Tag)
	}
	require.Equal(t, []uint32{8, 35, 49}, tags)

	// The sequence is restartable.
	tags = tags[:0]
	for f := range msg.All() {
		tags = append(tags, f.Tag)
		if f.Tag == 35 {
			break
		}
	}
	require.Equal(t, []uint32{8, 35}, tags)
}

func TestMessage_FixVersion(t *testing.T) {
	dec := NewDecoder()

	msg, err := dec.Decode(fix("8=FIX.4.4|35=D|"))
	require.NoError(t, err)
	v, ok := msg.FixVersion()
	require.True(t, ok)
	require.Equal(t, []byte(dict.VersionFIX44), v)

	msg, err = dec.Decode(fix("35=D|"))
	require.NoError(t, err)
	_, ok = msg.FixVersion()
	require.False(t, ok)
}

func TestMessage_ValidateBodyLength(t *testing.T) {
	dec := NewDecoder()

	t.Run("correct single body field", func(t *testing.T) {
		// Body = "35=D|" (5 bytes), declared 9=5.
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=181|"))
		require.NoError(t, err)
		require.NoError(t, msg.ValidateBodyLength())
	})

	t.Run("correct multi field body", func(t *testing.T) {
		// Body = "35=D|49=SENDER|56=TARGET|" (25 bytes).
		msg, err := dec.Decode(fix("8=FIX.4.2|9=25|35=D|49=SENDER|56=TARGET|10=195|"))
		require.NoError(t, err)
		require.NoError(t, msg.ValidateBodyLength())
	})

	t.Run("wrong declared value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=99|35=D|10=000|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})

	t.Run("non-numeric declared value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=abc|35=D|10=000|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})

	t.Run("fewer than three fields", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|35=D|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})

	t.Run("tag 9 not second field", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|35=D|9=5|10=000|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})

	t.Run("tag 10 not last field", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|10=000|35=D|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateBodyLength(), errs.ErrInvalidBodyLength)
	})
}

func TestMessage_ValidateCheckSum(t *testing.T) {
	dec := NewDecoder()

	t.Run("correct", func(t *testing.T) {
		// sum("8=FIX.4.2|9=5|35=D|") % 256 = 181
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=181|"))
		require.NoError(t, err)
		require.NoError(t, msg.ValidateCheckSum())
	})

	t.Run("correct multi field body", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=25|35=D|49=SENDER|56=TARGET|10=195|"))
		require.NoError(t, err)
		require.NoError(t, msg.ValidateCheckSum())
	})

	t.Run("wrong declared value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=000|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})

	t.Run("declared value above 255", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=437|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})

	t.Run("non-numeric declared value", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|9=5|35=D|10=xyz|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})

	t.Run("tag 10 missing", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|35=D|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})

	t.Run("tag 10 not last field", func(t *testing.T) {
		msg, err := dec.Decode(fix("8=FIX.4.2|10=181|35=D|"))
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})

	t.Run("empty message", func(t *testing.T) {
		msg, err := dec.Decode(nil)
		require.NoError(t, err)
		require.ErrorIs(t, msg.ValidateCheckSum(), errs.ErrInvalidCheckSum)
	})
}

func TestMessage_ValidateBothTogether(t *testing.T) {
	dec := NewDecoder()
	msg, err := dec.Decode(fix("8=FIX.4.2|9=25|35=D|49=SENDER|56=TARGET|10=195|"))
	require.NoError(t, err)
	require.NoError(t, msg.ValidateBodyLength())
	require.NoError(t, msg.ValidateCheckSum())
}
