package squish

import "github.com/user538295/squish/core"

// Re-exported core types. External users import squish, not squish/core.
type (
	// SourceEndpoint identifies where input bytes come from.
	SourceEndpoint = core.SourceEndpoint
	// SinkEndpoint identifies where output bytes go.
	SinkEndpoint = core.SinkEndpoint
	// Direction selects between compression and decompression.
	Direction = core.Direction
	// Plan is the result of output resolution.
	Plan = core.Plan
	// Counts reports cumulative stream progress for one run.
	Counts = core.Counts
	// Codec is one compression algorithm backend.
	Codec = core.Codec
	// Session is one streaming compression or decompression state machine.
	Session = core.Session
	// Status is the result of one Session.Process step.
	Status = core.Status
	// Registry maps algorithm names to backends.
	Registry = core.Registry
	// Guard is a per-chunk policy hook for the streaming loop.
	Guard = core.Guard
	// RatioGuard rejects streams whose expansion ratio exceeds a limit.
	RatioGuard = core.RatioGuard
)

// Direction values.
const (
	Compress   = core.Compress
	Decompress = core.Decompress
)

// Status values.
const (
	StatusContinue   = core.StatusContinue
	StatusOutputFull = core.StatusOutputFull
	StatusDone       = core.StatusDone
)

// FileSource returns a source endpoint for the file at path.
func FileSource(path string) SourceEndpoint { return core.FileSource(path) }

// StdinSource returns a source endpoint bound to standard input.
func StdinSource() SourceEndpoint { return core.StdinSource() }

// FileSink returns a sink endpoint for the file at path.
func FileSink(path string) SinkEndpoint { return core.FileSink(path) }

// StdoutSink returns a sink endpoint bound to standard output.
func StdoutSink() SinkEndpoint { return core.StdoutSink() }
