// Package core provides the shared types and interfaces for squish.
//
// This package exists to break import cycles between the root squish package
// and internal implementation packages. The squish package re-exports all
// public types from this package, so external users should import squish
// directly, not squish/core.
package core

import "io"

// Direction selects between compression and decompression.
type Direction int

const (
	// Compress encodes plain bytes into the codec's format.
	Compress Direction = iota
	// Decompress decodes bytes previously produced by Compress.
	Decompress
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if d == Decompress {
		return "decompress"
	}
	return "compress"
}

type endpointKind uint8

const (
	endpointFile endpointKind = iota + 1
	endpointStandard
)

// SourceEndpoint identifies where input bytes come from: a file path or the
// process's standard input. The zero value is invalid; use FileSource or
// StdinSource.
type SourceEndpoint struct {
	kind endpointKind
	path string
}

// FileSource returns a source endpoint for the file at path.
func FileSource(path string) SourceEndpoint {
	return SourceEndpoint{kind: endpointFile, path: path}
}

// StdinSource returns a source endpoint bound to standard input.
func StdinSource() SourceEndpoint {
	return SourceEndpoint{kind: endpointStandard}
}

// File returns the file path and true when the endpoint is a file.
func (e SourceEndpoint) File() (string, bool) {
	return e.path, e.kind == endpointFile
}

// IsStandard reports whether the endpoint is the standard input stream.
func (e SourceEndpoint) IsStandard() bool { return e.kind == endpointStandard }

// String returns the path for file endpoints and "stdin" otherwise.
func (e SourceEndpoint) String() string {
	if e.kind == endpointFile {
		return e.path
	}
	return "stdin"
}

// SinkEndpoint identifies where output bytes go: a file path or the
// process's standard output. The zero value is invalid; use FileSink or
// StdoutSink.
type SinkEndpoint struct {
	kind endpointKind
	path string
}

// FileSink returns a sink endpoint for the file at path.
func FileSink(path string) SinkEndpoint {
	return SinkEndpoint{kind: endpointFile, path: path}
}

// StdoutSink returns a sink endpoint bound to standard output.
func StdoutSink() SinkEndpoint {
	return SinkEndpoint{kind: endpointStandard}
}

// File returns the file path and true when the endpoint is a file.
func (e SinkEndpoint) File() (string, bool) {
	return e.path, e.kind == endpointFile
}

// IsStandard reports whether the endpoint is the standard output stream.
func (e SinkEndpoint) IsStandard() bool { return e.kind == endpointStandard }

// String returns the path for file endpoints and "stdout" otherwise.
func (e SinkEndpoint) String() string {
	if e.kind == endpointFile {
		return e.path
	}
	return "stdout"
}

// Plan is the result of output resolution: the concrete destination plus the
// algorithm to run. Computed once before streaming starts and never mutated.
type Plan struct {
	// Sink is the resolved destination endpoint.
	Sink SinkEndpoint
	// Algorithm is the canonical lowercase algorithm name.
	Algorithm string
}

// Counts reports cumulative stream progress for one run.
type Counts struct {
	// BytesIn is the number of source bytes consumed by the codec.
	BytesIn int64
	// BytesOut is the number of bytes written to the sink.
	BytesOut int64
}

// FileSystem abstracts filesystem access for endpoints.
// Implemented by internal/fsys and by in-memory fakes in tests.
type FileSystem interface {
	// OpenReadable opens the file at path for reading.
	OpenReadable(path string) (io.ReadCloser, error)

	// OpenWritable opens the file at path for writing, truncating unless
	// appendTo is set. The file is created if it does not exist.
	OpenWritable(path string, appendTo bool) (io.WriteCloser, error)

	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
}

// Environment abstracts the process's standard streams.
// Opening a standard-stream endpoint never fails; the channels exist because
// the process was launched at all.
type Environment interface {
	// Stdin returns the process's standard input channel.
	Stdin() io.Reader

	// Stdout returns the process's standard output channel.
	Stdout() io.Writer

	// StdinIsPipe reports whether standard input is a pipe or redirection
	// rather than an interactive terminal.
	StdinIsPipe() bool

	// StdoutIsPipe reports whether standard output is a pipe or redirection
	// rather than an interactive terminal.
	StdoutIsPipe() bool
}
