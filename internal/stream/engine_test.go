package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user538295/squish/core"
	"github.com/user538295/squish/internal/codec"
	"github.com/user538295/squish/internal/testutil/memfs"
)

const testChunk = 1024

func testEngine(fs core.FileSystem, env core.Environment) *Engine {
	return &Engine{FS: fs, Env: env, ChunkSize: testChunk}
}

func payloadOf(size int) []byte {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test data
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(rng.Intn(8)) // compressible
	}
	return out
}

func TestEngine_FileRoundTrip(t *testing.T) {
	t.Parallel()

	sizes := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "sub chunk", size: testChunk / 3},
		{name: "exact chunk", size: testChunk},
		{name: "double chunk", size: 2 * testChunk},
		{name: "fractional chunks", size: 5*testChunk + 123},
		{name: "large", size: 300 * testChunk},
	}

	for _, backend := range []core.Codec{codec.NewLZ4(), codec.NewLZFSE(), codec.NewZlib(), codec.NewLZMA()} {
		for _, tt := range sizes {
			t.Run(backend.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				payload := payloadOf(tt.size)
				fs := memfs.New()
				fs.WriteFile("in.bin", payload)
				engine := testEngine(fs, &memfs.Env{})

				counts, err := engine.Run(
					core.FileSource("in.bin"), core.FileSink("in.bin.z"),
					backend, core.Compress,
				)
				require.NoError(t, err)
				assert.Equal(t, int64(tt.size), counts.BytesIn)

				counts, err = engine.Run(
					core.FileSource("in.bin.z"), core.FileSink("out.bin"),
					backend, core.Decompress,
				)
				require.NoError(t, err)
				assert.Equal(t, int64(tt.size), counts.BytesOut)

				restored, ok := fs.ReadFile("out.bin")
				require.True(t, ok)
				assert.Equal(t, payload, restored)
			})
		}
	}
}

func TestEngine_EmptyInputProducesValidStream(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	fs.WriteFile("empty", nil)
	engine := testEngine(fs, &memfs.Env{})

	backend := codec.NewLZ4()
	_, err := engine.Run(core.FileSource("empty"), core.FileSink("empty.lz4"), backend, core.Compress)
	require.NoError(t, err)

	compressed, ok := fs.ReadFile("empty.lz4")
	require.True(t, ok)
	assert.NotEmpty(t, compressed, "empty payload still gets a frame header")

	counts, err := engine.Run(core.FileSource("empty.lz4"), core.FileSink("restored"), backend, core.Decompress)
	require.NoError(t, err)
	assert.Zero(t, counts.BytesOut)

	restored, ok := fs.ReadFile("restored")
	require.True(t, ok)
	assert.Empty(t, restored)
}

func TestEngine_StandardStreams(t *testing.T) {
	t.Parallel()

	payload := payloadOf(10 * testChunk)
	backend := codec.NewZlib()

	var compressed bytes.Buffer
	engine := testEngine(memfs.New(), &memfs.Env{In: bytes.NewReader(payload), Out: &compressed, InPipe: true, OutPipe: true})
	_, err := engine.Run(core.StdinSource(), core.StdoutSink(), backend, core.Compress)
	require.NoError(t, err)

	var restored bytes.Buffer
	engine = testEngine(memfs.New(), &memfs.Env{In: bytes.NewReader(compressed.Bytes()), Out: &restored, InPipe: true, OutPipe: true})
	_, err = engine.Run(core.StdinSource(), core.StdoutSink(), backend, core.Decompress)
	require.NoError(t, err)

	assert.Equal(t, payload, restored.Bytes())
}

func TestEngine_MissingSource(t *testing.T) {
	t.Parallel()

	engine := testEngine(memfs.New(), &memfs.Env{})
	_, err := engine.Run(core.FileSource("nope"), core.FileSink("out"), codec.NewLZ4(), core.Compress)
	assert.ErrorIs(t, err, core.ErrOpen)
}

func TestEngine_ZeroEndpoint(t *testing.T) {
	t.Parallel()

	engine := testEngine(memfs.New(), &memfs.Env{})
	_, err := engine.Run(core.SourceEndpoint{}, core.FileSink("out"), codec.NewLZ4(), core.Compress)
	assert.ErrorIs(t, err, core.ErrBadEndpoint)
}

func TestEngine_CorruptInputFails(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	fs.WriteFile("garbage.lz4", []byte("this is not an lz4 frame at all"))
	engine := testEngine(fs, &memfs.Env{})

	_, err := engine.Run(core.FileSource("garbage.lz4"), core.FileSink("out"), codec.NewLZ4(), core.Decompress)
	assert.ErrorIs(t, err, core.ErrDecode)
}

func TestEngine_TruncatedInputFails(t *testing.T) {
	t.Parallel()

	backend := codec.NewLZMA()
	fs := memfs.New()
	fs.WriteFile("in", payloadOf(50*testChunk))
	engine := testEngine(fs, &memfs.Env{})

	_, err := engine.Run(core.FileSource("in"), core.FileSink("in.lzma"), backend, core.Compress)
	require.NoError(t, err)

	compressed, ok := fs.ReadFile("in.lzma")
	require.True(t, ok)
	fs.WriteFile("in.lzma", compressed[:len(compressed)/2])

	_, err = engine.Run(core.FileSource("in.lzma"), core.FileSink("out"), backend, core.Decompress)
	assert.ErrorIs(t, err, core.ErrDecode)
}

// brokenSink fails after accepting a fixed number of bytes, like a pipe
// whose reader went away.
type brokenSink struct {
	remaining int
}

func (s *brokenSink) Write(p []byte) (int, error) {
	if len(p) > s.remaining {
		n := s.remaining
		s.remaining = 0
		return n, errors.New("broken pipe")
	}
	s.remaining -= len(p)
	return len(p), nil
}

func TestEngine_WriteFailureIsTerminal(t *testing.T) {
	t.Parallel()

	payload := payloadOf(200 * testChunk)
	engine := testEngine(memfs.New(), &memfs.Env{In: bytes.NewReader(payload), Out: &brokenSink{remaining: 128}, InPipe: true, OutPipe: true})

	_, err := engine.Run(core.StdinSource(), core.StdoutSink(), codec.NewZlib(), core.Compress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write sink")
}

func TestEngine_GuardStopsRun(t *testing.T) {
	t.Parallel()

	// Highly compressible input yields an extreme expansion ratio on
	// decompression, which the guard must reject.
	payload := bytes.Repeat([]byte{0}, 500*testChunk)
	backend := codec.NewZlib()

	fs := memfs.New()
	fs.WriteFile("in", payload)
	engine := testEngine(fs, &memfs.Env{})
	_, err := engine.Run(core.FileSource("in"), core.FileSink("in.zlib"), backend, core.Compress)
	require.NoError(t, err)

	engine.Guard = core.RatioGuard{MaxRatio: 2, MinOutput: 1}
	_, err = engine.Run(core.FileSource("in.zlib"), core.FileSink("out"), backend, core.Decompress)
	assert.ErrorIs(t, err, core.ErrLimitExceeded)
}

func TestEngine_ProgressReportsMonotonically(t *testing.T) {
	t.Parallel()

	var reports []int64
	fs := memfs.New()
	fs.WriteFile("in", payloadOf(50*testChunk))
	engine := testEngine(fs, &memfs.Env{})
	engine.Progress = func(n int64) { reports = append(reports, n) }

	counts, err := engine.Run(core.FileSource("in"), core.FileSink("out.lz4"), codec.NewLZ4(), core.Compress)
	require.NoError(t, err)
	require.NotEmpty(t, reports)

	last := int64(0)
	for _, n := range reports {
		assert.GreaterOrEqual(t, n, last)
		last = n
	}
	assert.Equal(t, counts.BytesOut, last)
}

// eofReader returns its last bytes together with io.EOF, which the loop
// must treat as data plus final.
type eofReader struct {
	data []byte
}

func (r *eofReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	if len(r.data) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func TestEngine_DataWithEOF(t *testing.T) {
	t.Parallel()

	payload := payloadOf(testChunk / 2)
	var compressed bytes.Buffer
	engine := testEngine(memfs.New(), &memfs.Env{In: &eofReader{data: payload}, Out: &compressed, InPipe: true, OutPipe: true})

	counts, err := engine.Run(core.StdinSource(), core.StdoutSink(), codec.NewLZ4(), core.Compress)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), counts.BytesIn)

	restored, err := codec.NewLZ4().DecompressBuffer(compressed.Bytes())
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}
