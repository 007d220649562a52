package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOpen indicates an endpoint channel could not be opened.
	ErrOpen = errors.New("squish: cannot open endpoint")

	// ErrBadEndpoint indicates an endpoint value is invalid (zero value or
	// empty file path).
	ErrBadEndpoint = errors.New("squish: invalid endpoint")

	// ErrUnknownAlgorithm indicates the named algorithm is not registered.
	ErrUnknownAlgorithm = errors.New("squish: unknown algorithm")

	// ErrAlgorithmRequired indicates no algorithm was given and none could
	// be inferred from the input name.
	ErrAlgorithmRequired = errors.New("squish: algorithm must be specified")

	// ErrAmbiguousOutput indicates no destination was given and none could
	// be inferred (standard-input source with a terminal on stdout).
	ErrAmbiguousOutput = errors.New("squish: cannot determine output destination")

	// ErrDecode indicates corrupt or truncated compressed input.
	ErrDecode = errors.New("squish: corrupt or truncated input")

	// ErrEncode indicates an internal compression failure.
	ErrEncode = errors.New("squish: encode failed")

	// ErrLimitExceeded indicates a policy guard rejected the stream.
	ErrLimitExceeded = errors.New("squish: stream limits exceeded")

	// ErrClosed indicates an operation on a closed session.
	ErrClosed = errors.New("squish: session closed")
)

// RatioGuard is a Guard that rejects streams whose output grows beyond
// MaxRatio times the consumed input. Small streams below MinOutput are
// exempt so codec headers on tiny inputs do not trip the limit.
//
// The zero value performs no checks.
type RatioGuard struct {
	// MaxRatio is the maximum allowed bytesOut/bytesIn. Zero disables the
	// guard.
	MaxRatio float64
	// MinOutput is the output byte count below which no check is performed.
	MinOutput int64
}

// Check implements Guard.
func (g RatioGuard) Check(bytesIn, bytesOut int64) error {
	if g.MaxRatio <= 0 || bytesOut < g.MinOutput || bytesIn == 0 {
		return nil
	}
	if ratio := float64(bytesOut) / float64(bytesIn); ratio > g.MaxRatio {
		return fmt.Errorf("%w: expansion ratio %.1f exceeds limit %.1f after %d bytes in, %d bytes out",
			ErrLimitExceeded, ratio, g.MaxRatio, bytesIn, bytesOut)
	}
	return nil
}
