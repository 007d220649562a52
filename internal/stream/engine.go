// Package stream implements the chunked driving loop that pumps bytes from
// a source endpoint through a codec session to a sink endpoint.
package stream

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/user538295/squish/core"
	"github.com/user538295/squish/internal/fsys"
)

// DefaultChunkSize is the per-iteration read size when none is configured.
// It is the single lever controlling the loop's peak memory.
const DefaultChunkSize = 64 * 1024

// Engine runs compress/decompress operations. The zero value is usable with
// explicit FS and Env; one Engine may run any number of operations, but each
// Run owns its buffers and session exclusively.
type Engine struct {
	// FS opens file endpoints.
	FS core.FileSystem
	// Env opens standard-stream endpoints.
	Env core.Environment
	// ChunkSize is the source read size per iteration. Zero means
	// DefaultChunkSize. Fixed for the whole run.
	ChunkSize int
	// Guard, when non-nil, is consulted after every Process call and before
	// the corresponding sink write.
	Guard core.Guard
	// Progress, when non-nil, receives the cumulative sink byte count after
	// every write.
	Progress func(bytesOut int64)
	// Logger receives debug breadcrumbs. Nil disables logging.
	Logger *slog.Logger
}

// Run opens both endpoints, streams src through the codec in dir, and
// guarantees every channel and the codec session are released on all exit
// paths. It returns the cumulative byte counts even on failure so callers
// can report partial progress.
func (e *Engine) Run(src core.SourceEndpoint, dst core.SinkEndpoint, cdc core.Codec, dir core.Direction) (core.Counts, error) {
	var counts core.Counts

	chunk := e.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r, err := fsys.OpenSource(e.FS, e.Env, src)
	if err != nil {
		return counts, err
	}
	w, err := fsys.OpenSink(e.FS, e.Env, dst)
	if err != nil {
		r.Close()
		return counts, err
	}

	sess, err := cdc.BeginStream(dir)
	if err != nil {
		r.Close()
		w.Close()
		return counts, err
	}

	logger.Debug("stream started",
		"direction", dir.String(),
		"algorithm", cdc.Name(),
		"source", src.String(),
		"sink", dst.String(),
		"chunk_size", chunk,
	)

	runErr := e.pump(r, w, sess, chunk, cdc.MaxExpansion(), &counts)

	// Release order: codec state, then source, then sink. Close errors never
	// mask an earlier stream error.
	if cerr := sess.Close(); runErr == nil && cerr != nil {
		runErr = cerr
	}
	if cerr := r.Close(); runErr == nil && cerr != nil {
		runErr = fmt.Errorf("close %s: %w", src, cerr)
	}
	if cerr := w.Close(); runErr == nil && cerr != nil {
		runErr = fmt.Errorf("close %s: %w", dst, cerr)
	}
	if runErr != nil {
		return counts, runErr
	}

	logger.Debug("stream finished",
		"direction", dir.String(),
		"algorithm", cdc.Name(),
		"bytes_in", counts.BytesIn,
		"bytes_out", counts.BytesOut,
	)
	return counts, nil
}

// pump is the read/process/write state machine. Both buffers are allocated
// once and reused for every iteration; peak memory does not depend on input
// size.
func (e *Engine) pump(r io.Reader, w io.Writer, sess core.Session, chunk, expansion int, counts *core.Counts) error {
	if expansion < 1 {
		expansion = 1
	}
	in := make([]byte, chunk)
	out := make([]byte, chunk*expansion)

	var (
		pending []byte
		final   bool
	)
	for {
		if len(pending) == 0 && !final {
			n, rerr := r.Read(in)
			if n > 0 {
				pending = in[:n]
			}
			switch {
			case rerr == io.EOF:
				// Source exhausted. An empty source still performs one
				// Process call below so header/footer-only streams work.
				final = true
			case rerr != nil:
				return fmt.Errorf("read source: %w", rerr)
			default:
				if len(pending) == 0 {
					continue
				}
			}
		}

		consumed, produced, status, perr := sess.Process(out, pending, final)
		pending = pending[consumed:]
		counts.BytesIn += int64(consumed)
		if perr != nil {
			return perr
		}

		if produced > 0 {
			if e.Guard != nil {
				if gerr := e.Guard.Check(counts.BytesIn, counts.BytesOut+int64(produced)); gerr != nil {
					return gerr
				}
			}
			if _, werr := w.Write(out[:produced]); werr != nil {
				// Broken pipe and disk-full land here; terminal, never
				// retried.
				return fmt.Errorf("write sink: %w", werr)
			}
			counts.BytesOut += int64(produced)
			if e.Progress != nil {
				e.Progress(counts.BytesOut)
			}
		}

		if status == core.StatusDone {
			return nil
		}
	}
}
