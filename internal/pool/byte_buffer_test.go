package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, 6, bb.Len())
	require.Equal(t, []byte("hello!"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowBeyondDefault(t *testing.T) {
	bb := NewByteBuffer(8)
	data := bytes.Repeat([]byte("x"), 1000)

	n, err := bb.Write(data)
	require.NoError(t, err)
	require.Equal(t, 1000, n)
	require.Equal(t, data, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, err := bb.Write([]byte("payload"))
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_RecyclesBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.Equal(t, 0, bb.Len())
	_, err := bb.Write([]byte("data"))
	require.NoError(t, err)
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	_, err := bb.Write(bytes.Repeat([]byte("x"), 1000))
	require.NoError(t, err)
	// Put must not panic on an oversized buffer; it is simply dropped.
	p.Put(bb)

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 64)
}

func TestPackageLevelPools(t *testing.T) {
	mb := GetMessageBuffer()
	require.NotNil(t, mb)
	require.Equal(t, 0, mb.Len())
	PutMessageBuffer(mb)

	blk := GetBlockBuffer()
	require.NotNil(t, blk)
	require.Equal(t, 0, blk.Len())
	PutBlockBuffer(blk)
}
