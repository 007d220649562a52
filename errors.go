package squish

import "github.com/user538295/squish/core"

// Sentinel errors for common failure conditions.
// Re-exported from core package.
var (
	// ErrOpen indicates an endpoint channel could not be opened.
	ErrOpen = core.ErrOpen

	// ErrBadEndpoint indicates an endpoint value is invalid.
	ErrBadEndpoint = core.ErrBadEndpoint

	// ErrUnknownAlgorithm indicates the named algorithm is not registered.
	ErrUnknownAlgorithm = core.ErrUnknownAlgorithm

	// ErrAlgorithmRequired indicates no algorithm was given and none could
	// be inferred from the input name.
	ErrAlgorithmRequired = core.ErrAlgorithmRequired

	// ErrAmbiguousOutput indicates no destination was given and none could
	// be inferred.
	ErrAmbiguousOutput = core.ErrAmbiguousOutput

	// ErrDecode indicates corrupt or truncated compressed input.
	ErrDecode = core.ErrDecode

	// ErrEncode indicates an internal compression failure.
	ErrEncode = core.ErrEncode

	// ErrLimitExceeded indicates a policy guard rejected the stream.
	ErrLimitExceeded = core.ErrLimitExceeded

	// ErrClosed indicates an operation on a closed session.
	ErrClosed = core.ErrClosed
)
