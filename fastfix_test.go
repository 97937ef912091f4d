package fastfix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastfix-go/fastfix/dict"
)

func TestDecodeFindEncode(t *testing.T) {
	raw := []byte(strings.ReplaceAll("8=FIX.4.2|9=5|35=D|10=181|", "|", "\x01"))

	dec := NewDecoder()
	msg, err := dec.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, 4, msg.Len())

	v, ok := msg.Find(TagMsgType)
	require.True(t, ok)
	require.Equal(t, []byte("D"), v)

	require.NoError(t, msg.ValidateBodyLength())
	require.NoError(t, msg.ValidateCheckSum())

	enc, err := NewEncoder()
	require.NoError(t, err)
	out, err := enc.Encode(msg, nil)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestGroupNavigation(t *testing.T) {
	raw := []byte(strings.ReplaceAll(
		"8=FIX.4.2|35=J|136=2|137=5.00|138=USD|139=1|137=2.50|138=EUR|139=2|", "|", "\x01"))

	msg, err := NewDecoder().Decode(raw)
	require.NoError(t, err)

	it := msg.Groups(dict.MiscFees)
	amounts := []string{}
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		v, ok := g.Find(dict.MiscFeeAmt)
		require.True(t, ok)
		amounts = append(amounts, string(v))
	}
	require.Equal(t, []string{"5.00", "2.50"}, amounts)
}
