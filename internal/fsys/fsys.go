// Package fsys provides the OS-backed endpoint abstraction: filesystem
// access for file endpoints and process-environment probes for the standard
// streams.
package fsys

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation checks.
var (
	_ core.FileSystem  = OS{}
	_ core.Environment = Stdio{}
)

// OS implements core.FileSystem on the local filesystem.
type OS struct{}

// OpenReadable implements core.FileSystem.
//
//nolint:gosec // G304: paths are user-provided CLI arguments
func (OS) OpenReadable(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// OpenWritable implements core.FileSystem.
//
//nolint:gosec // G304: paths are user-provided CLI arguments
func (OS) OpenWritable(path string, appendTo bool) (io.WriteCloser, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0o644)
}

// Exists implements core.FileSystem.
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stdio implements core.Environment on the process's inherited streams.
type Stdio struct{}

// Stdin implements core.Environment.
func (Stdio) Stdin() io.Reader { return os.Stdin }

// Stdout implements core.Environment.
func (Stdio) Stdout() io.Writer { return os.Stdout }

// StdinIsPipe implements core.Environment.
func (Stdio) StdinIsPipe() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// StdoutIsPipe implements core.Environment.
func (Stdio) StdoutIsPipe() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// OpenSource turns a source endpoint into a readable byte channel. File
// failures carry the path; standard-stream endpoints never fail.
func OpenSource(fs core.FileSystem, env core.Environment, ep core.SourceEndpoint) (io.ReadCloser, error) {
	if path, ok := ep.File(); ok {
		if path == "" {
			return nil, fmt.Errorf("%w: file source with empty path", core.ErrBadEndpoint)
		}
		rc, err := fs.OpenReadable(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrOpen, path, err)
		}
		return rc, nil
	}
	if ep.IsStandard() {
		return io.NopCloser(env.Stdin()), nil
	}
	return nil, fmt.Errorf("%w: zero source endpoint", core.ErrBadEndpoint)
}

// OpenSink turns a sink endpoint into a writable byte channel. File
// failures carry the path; standard-stream endpoints never fail.
func OpenSink(fs core.FileSystem, env core.Environment, ep core.SinkEndpoint) (io.WriteCloser, error) {
	if path, ok := ep.File(); ok {
		if path == "" {
			return nil, fmt.Errorf("%w: file sink with empty path", core.ErrBadEndpoint)
		}
		wc, err := fs.OpenWritable(path, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrOpen, path, err)
		}
		return wc, nil
	}
	if ep.IsStandard() {
		return nopWriteCloser{env.Stdout()}, nil
	}
	return nil, fmt.Errorf("%w: zero sink endpoint", core.ErrBadEndpoint)
}

// nopWriteCloser leaves the standard output channel open; the process owns
// it, not the stream run.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
