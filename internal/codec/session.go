package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation checks.
var (
	_ core.Session = (*writerSession)(nil)
	_ core.Session = (*readerSession)(nil)
)

// writerSession adapts an io.WriteCloser compression stream to the
// push-style Session contract. Codec output is staged in an internal buffer
// and drained into the caller's dst; input is only accepted while the
// backlog stays under one dst worth, so the caller sees a real
// "output full, input not drained" condition.
type writerSession struct {
	staged  bytes.Buffer
	enc     io.WriteCloser
	flushed bool
	closed  bool
}

func newWriterSession(newEnc func(io.Writer) (io.WriteCloser, error)) (*writerSession, error) {
	s := &writerSession{}
	enc, err := newEnc(&s.staged)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEncode, err)
	}
	s.enc = enc
	return s, nil
}

// Process implements core.Session.
func (s *writerSession) Process(dst, src []byte, final bool) (int, int, core.Status, error) {
	if s.closed {
		return 0, 0, core.StatusDone, core.ErrClosed
	}

	consumed := 0
	if len(src) > 0 && s.staged.Len() < len(dst) {
		n, err := s.enc.Write(src)
		consumed = n
		if err != nil {
			return consumed, 0, core.StatusContinue, fmt.Errorf("%w: %v", core.ErrEncode, err)
		}
	}

	if final && consumed == len(src) && !s.flushed {
		if err := s.enc.Close(); err != nil {
			return consumed, 0, core.StatusContinue, fmt.Errorf("%w: %v", core.ErrEncode, err)
		}
		s.flushed = true
	}

	produced, _ := s.staged.Read(dst)

	switch {
	case s.flushed && s.staged.Len() == 0:
		return consumed, produced, core.StatusDone, nil
	case s.staged.Len() > 0 || consumed < len(src):
		return consumed, produced, core.StatusOutputFull, nil
	default:
		return consumed, produced, core.StatusContinue, nil
	}
}

// Close implements core.Session.
func (s *writerSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.flushed {
		s.flushed = true
		// Trailing output lands in the staged buffer and is discarded.
		return s.enc.Close()
	}
	return nil
}

// errTrailing marks input bytes arriving after the compressed stream ended.
var errTrailing = errors.New("trailing data after end of stream")

// readerSession adapts an io.Reader decompression stream to the push-style
// Session contract. A pump goroutine runs the decoder against the read end
// of a pipe and drains decoded bytes into a buffer; Process writes input to
// the pipe and hands drained bytes to the caller.
//
// The goroutine is an adapter detail: each Process call is synchronous and
// the session is still exclusively owned by one driving loop.
type readerSession struct {
	pw   *io.PipeWriter
	done chan struct{}

	mu      sync.Mutex
	drain   bytes.Buffer
	pumpErr error

	finSent bool
	closed  bool
}

func newReaderSession(newDec func(io.Reader) (io.ReadCloser, error)) *readerSession {
	pr, pw := io.Pipe()
	s := &readerSession{pw: pw, done: make(chan struct{})}
	go s.pump(pr, newDec)
	return s
}

func (s *readerSession) pump(pr *io.PipeReader, newDec func(io.Reader) (io.ReadCloser, error)) {
	defer close(s.done)

	dec, err := newDec(pr)
	if err != nil {
		s.fail(pr, err)
		return
	}
	defer dec.Close()

	buf := make([]byte, 32*1024)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.drain.Write(buf[:n])
			s.mu.Unlock()
		}
		if err == io.EOF {
			// The stream ended; any further input is garbage. Closing the
			// read end makes subsequent Process writes fail.
			pr.CloseWithError(errTrailing)
			return
		}
		if err != nil {
			s.fail(pr, err)
			return
		}
	}
}

func (s *readerSession) fail(pr *io.PipeReader, err error) {
	s.mu.Lock()
	s.pumpErr = err
	s.mu.Unlock()
	pr.CloseWithError(err)
}

// Process implements core.Session.
func (s *readerSession) Process(dst, src []byte, final bool) (int, int, core.Status, error) {
	if s.closed {
		return 0, 0, core.StatusDone, core.ErrClosed
	}

	consumed := 0
	if len(src) > 0 && s.backlog() < len(dst) {
		n, err := s.pw.Write(src)
		consumed = n
		if err != nil {
			return consumed, 0, core.StatusContinue, s.decodeError(err)
		}
	}

	if final && consumed == len(src) && !s.finSent {
		s.pw.Close()
		s.finSent = true
	}
	if s.finSent {
		// The decoder settles quickly once its input is closed.
		<-s.done
	}

	s.mu.Lock()
	if err := s.pumpErr; err != nil {
		s.mu.Unlock()
		return consumed, 0, core.StatusContinue, s.decodeError(err)
	}
	produced, _ := s.drain.Read(dst)
	remaining := s.drain.Len()
	s.mu.Unlock()

	pumpDone := false
	select {
	case <-s.done:
		pumpDone = true
	default:
	}

	switch {
	case s.finSent && pumpDone && remaining == 0:
		return consumed, produced, core.StatusDone, nil
	case remaining > 0 || consumed < len(src):
		return consumed, produced, core.StatusOutputFull, nil
	default:
		return consumed, produced, core.StatusContinue, nil
	}
}

// Close implements core.Session.
func (s *readerSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pw.CloseWithError(core.ErrClosed)
	<-s.done
	return nil
}

func (s *readerSession) backlog() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drain.Len()
}

// decodeError prefers the decoder's own failure over pipe plumbing errors.
func (s *readerSession) decodeError(err error) error {
	s.mu.Lock()
	if s.pumpErr != nil {
		err = s.pumpErr
	}
	s.mu.Unlock()
	return fmt.Errorf("%w: %v", core.ErrDecode, err)
}

// compressBuffer is the shared whole-buffer compression path: the same
// stream writer the session uses, run to completion in one call.
func compressBuffer(newEnc func(io.Writer) (io.WriteCloser, error), src []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := newEnc(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEncode, err)
	}
	if _, err := enc.Write(src); err != nil {
		enc.Close()
		return nil, fmt.Errorf("%w: %v", core.ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// decompressBuffer is the shared whole-buffer decompression path.
func decompressBuffer(newDec func(io.Reader) (io.ReadCloser, error), src []byte) ([]byte, error) {
	dec, err := newDec(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecode, err)
	}
	defer dec.Close()
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecode, err)
	}
	return out, nil
}
