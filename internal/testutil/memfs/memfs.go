// Package memfs provides in-memory FileSystem and Environment fakes for
// tests.
package memfs

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation checks.
var (
	_ core.FileSystem  = (*FS)(nil)
	_ core.Environment = (*Env)(nil)
)

// FS is an in-memory core.FileSystem. Safe for concurrent use.
type FS struct {
	mu    sync.Mutex
	files map[string][]byte
}

// New creates an empty in-memory filesystem.
func New() *FS {
	return &FS{files: make(map[string][]byte)}
}

// WriteFile stores content under path, replacing any prior content.
func (m *FS) WriteFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), content...)
}

// ReadFile returns the content stored under path.
func (m *FS) ReadFile(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	return content, ok
}

// OpenReadable implements core.FileSystem.
func (m *FS) OpenReadable(path string) (io.ReadCloser, error) {
	content, ok := m.ReadFile(path)
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// OpenWritable implements core.FileSystem. Content is committed on Close.
func (m *FS) OpenWritable(path string, appendTo bool) (io.WriteCloser, error) {
	w := &memFile{fs: m, path: path}
	if appendTo {
		if prior, ok := m.ReadFile(path); ok {
			w.buf.Write(prior)
		}
	}
	return w, nil
}

// Exists implements core.FileSystem.
func (m *FS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

type memFile struct {
	fs   *FS
	path string
	buf  bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *memFile) Close() error {
	f.fs.WriteFile(f.path, f.buf.Bytes())
	return nil
}

// Env is a scripted core.Environment.
type Env struct {
	// In backs Stdin. A nil In reads as empty.
	In io.Reader
	// Out backs Stdout.
	Out io.Writer
	// InPipe and OutPipe are the pipe-vs-terminal answers.
	InPipe, OutPipe bool
}

// Stdin implements core.Environment.
func (e *Env) Stdin() io.Reader {
	if e.In == nil {
		return bytes.NewReader(nil)
	}
	return e.In
}

// Stdout implements core.Environment.
func (e *Env) Stdout() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

// StdinIsPipe implements core.Environment.
func (e *Env) StdinIsPipe() bool { return e.InPipe }

// StdoutIsPipe implements core.Environment.
func (e *Env) StdoutIsPipe() bool { return e.OutPipe }
