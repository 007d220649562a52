package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user538295/squish/core"
)

// The write side must stop consuming input while staged output exceeds one
// dst worth, so the driving loop sees "output full, input not drained".
func TestWriterSession_BacklogStopsConsumption(t *testing.T) {
	t.Parallel()

	c := NewZlib()
	sess, err := c.BeginStream(core.Compress)
	require.NoError(t, err)
	defer sess.Close()

	// Flush a sizable payload with a tiny dst so staged output backs up.
	payload := bytes.Repeat([]byte("squish"), 10_000)
	dst := make([]byte, 8)

	consumed, produced, status, err := sess.Process(dst, payload, true)
	require.NoError(t, err)
	assert.Equal(t, len(payload), consumed, "first call accepts input into empty staging")
	assert.LessOrEqual(t, produced, len(dst))
	assert.Equal(t, core.StatusOutputFull, status)

	// With backlog pending, new input must not be consumed.
	consumed, _, status, err = sess.Process(dst, []byte("more"), true)
	require.NoError(t, err)
	assert.Zero(t, consumed)
	assert.Equal(t, core.StatusOutputFull, status)
}

func TestWriterSession_DrainToDone(t *testing.T) {
	t.Parallel()

	c := NewLZ4()
	sess, err := c.BeginStream(core.Compress)
	require.NoError(t, err)
	defer sess.Close()

	dst := make([]byte, 16)
	var out bytes.Buffer

	consumed, produced, status, err := sess.Process(dst, []byte("payload"), true)
	require.NoError(t, err)
	assert.Equal(t, 7, consumed)
	out.Write(dst[:produced])

	for status != core.StatusDone {
		_, produced, status, err = sess.Process(dst, nil, true)
		require.NoError(t, err)
		out.Write(dst[:produced])
	}

	restored, err := c.DecompressBuffer(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), restored)
}

func TestSession_ProcessAfterClose(t *testing.T) {
	t.Parallel()

	for _, dir := range []core.Direction{core.Compress, core.Decompress} {
		t.Run(dir.String(), func(t *testing.T) {
			t.Parallel()

			sess, err := NewLZ4().BeginStream(dir)
			require.NoError(t, err)
			require.NoError(t, sess.Close())

			_, _, _, perr := sess.Process(make([]byte, 8), []byte("x"), false)
			assert.ErrorIs(t, perr, core.ErrClosed)
		})
	}
}

func TestSession_CloseIdempotent(t *testing.T) {
	t.Parallel()

	for _, dir := range []core.Direction{core.Compress, core.Decompress} {
		t.Run(dir.String(), func(t *testing.T) {
			t.Parallel()

			sess, err := NewLZFSE().BeginStream(dir)
			require.NoError(t, err)
			require.NoError(t, sess.Close())
			require.NoError(t, sess.Close())
		})
	}
}

// Closing a decompression session mid-stream must release the pump
// goroutine rather than leak it.
func TestReaderSession_CloseMidStream(t *testing.T) {
	t.Parallel()

	c := NewZlib()
	compressed, err := c.CompressBuffer(bytes.Repeat([]byte("data"), 50_000))
	require.NoError(t, err)

	sess, err := c.BeginStream(core.Decompress)
	require.NoError(t, err)

	dst := make([]byte, 256)
	_, _, _, perr := sess.Process(dst, compressed[:len(compressed)/2], false)
	require.NoError(t, perr)

	assert.NoError(t, sess.Close())
}
