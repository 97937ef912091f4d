package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastfix-go/fastfix/errs"
)

func TestField_String(t *testing.T) {
	s, err := Field{Tag: 58, Value: []byte("hello")}.String()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	_, err = Field{Tag: 96, Value: []byte{0xff, 0xfe}}.String()
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestField_Uint(t *testing.T) {
	n, err := Field{Value: []byte("12345")}.Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(12345), n)

	n, err = Field{Value: []byte("0")}.Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)

	n, err = Field{Value: []byte("18446744073709551615")}.Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<64-1), n)

	for _, bad := range []string{"", "12a", "-5", "18446744073709551616"} {
		_, err = Field{Value: []byte(bad)}.Uint()
		require.ErrorIs(t, err, errs.ErrInvalidValue, "value %q", bad)
	}
}

func TestField_Int(t *testing.T) {
	n, err := Field{Value: []byte("42")}.Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), n)

	n, err = Field{Value: []byte("-42")}.Int()
	require.NoError(t, err)
	require.Equal(t, int64(-42), n)

	n, err = Field{Value: []byte("-9223372036854775808")}.Int()
	require.NoError(t, err)
	require.Equal(t, int64(-1<<63), n)

	n, err = Field{Value: []byte("9223372036854775807")}.Int()
	require.NoError(t, err)
	require.Equal(t, int64(1<<63-1), n)

	for _, bad := range []string{"", "-", "9223372036854775808", "-9223372036854775809"} {
		_, err = Field{Value: []byte(bad)}.Int()
		require.ErrorIs(t, err, errs.ErrInvalidValue, "value %q", bad)
	}
}
