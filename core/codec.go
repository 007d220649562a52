package core

// Status is the result of one Session.Process step. It is the enum rendition
// of the status codes a native codec state machine reports; errors travel on
// the error return instead of a status value.
type Status int

const (
	// StatusContinue means the codec consumed the input it was given and can
	// accept more.
	StatusContinue Status = iota
	// StatusOutputFull means the codec has more output than fit in dst, or
	// stopped consuming input because of output backlog. The caller must
	// drain by calling Process again with the remaining input before
	// supplying a new chunk.
	StatusOutputFull
	// StatusDone means the stream is complete: all input was consumed, all
	// buffered state was flushed, and no further output will be produced.
	StatusDone
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusOutputFull:
		return "output-full"
	case StatusDone:
		return "done"
	default:
		return "continue"
	}
}

// Session is the stateful, chunked side of a codec: one compression or
// decompression stream driven by repeated Process calls.
//
// A Session is owned by exactly one driving loop for its whole lifetime and
// must not be shared across concurrent runs. Close releases any resources
// the backend holds and is safe to call after an error or multiple times.
type Session interface {
	// Process consumes up to len(src) bytes into the codec and fills dst
	// with up to len(dst) produced bytes. It returns how many source bytes
	// were consumed, how many output bytes were produced, and the stream
	// status.
	//
	// final marks src as the last input; the codec then flushes internally
	// buffered state (headers, end-of-stream markers) across this and
	// subsequent calls. Once final has been accepted, callers keep invoking
	// Process with empty src until StatusDone.
	//
	// When the status is StatusOutputFull the caller must re-invoke with the
	// unconsumed remainder of src before reading new input.
	Process(dst, src []byte, final bool) (consumed, produced int, status Status, err error)

	// Close releases backend resources. Required on every exit path.
	Close() error
}

// Codec is one compression algorithm backend.
//
// The buffer methods are for small whole payloads; the streaming path goes
// through BeginStream. Both produce the same wire format.
type Codec interface {
	// Name returns the canonical lowercase algorithm name, which is also the
	// file suffix for default output naming.
	Name() string

	// CompressBuffer compresses src in one shot.
	CompressBuffer(src []byte) ([]byte, error)

	// DecompressBuffer decompresses src in one shot. Corrupt or truncated
	// input yields an error wrapping ErrDecode.
	DecompressBuffer(src []byte) ([]byte, error)

	// BeginStream starts a streaming session for the given direction.
	BeginStream(dir Direction) (Session, error)

	// MaxExpansion returns the multiplier used to size the driving loop's
	// output buffer relative to the input chunk size. Purely a sizing hint:
	// correctness does not depend on it because Process reports
	// StatusOutputFull when output exceeds the buffer.
	MaxExpansion() int
}

// Registry maps algorithm names to codec backends.
//
// Lookup is case-insensitive. Registering a name that is already present
// replaces the prior entry. Build one explicitly at startup and pass it
// down; there is no package-level instance.
type Registry interface {
	// Register adds a backend under its canonical name, replacing any
	// existing entry for that name.
	Register(c Codec)

	// Lookup returns the backend registered under name, matched
	// case-insensitively.
	Lookup(name string) (Codec, bool)

	// SupportedNames returns all registered names, sorted.
	SupportedNames() []string
}

// Guard is an optional per-chunk policy hook the driving loop invokes after
// each Process call and before writing produced bytes to the sink. Returning
// an error terminates the run.
type Guard interface {
	Check(bytesIn, bytesOut int64) error
}
