package pool

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Zero(t, bb.Len())
	require.Equal(t, 16, cap(bb.B))

	n, err := bb.Write([]byte("state,abbr"))
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, []byte("state,abbr"), bb.Bytes())

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(10), written)
	require.Equal(t, "state,abbr", out.String())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, 16, cap(bb.B))
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write(make([]byte, 64))
	p.Put(bb)
	p.Put(nil)

	small := p.Get()
	require.Zero(t, small.Len())
}

func TestFrameBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := GetFrameBuffer()
			_, _ = bb.Write([]byte("frame"))
			PutFrameBuffer(bb)
		}()
	}
	wg.Wait()

	bb := GetFrameBuffer()
	require.Zero(t, bb.Len())
	PutFrameBuffer(bb)
}

func TestBuffered(t *testing.T) {
	var out bytes.Buffer
	err := Buffered(&out, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "<svg/>", out.String())

	out.Reset()
	boom := errors.New("boom")
	err = Buffered(&out, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Zero(t, out.Len())
}
