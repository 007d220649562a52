package squish

import (
	"fmt"
	"log/slog"

	"github.com/user538295/squish/core"
	"github.com/user538295/squish/internal/codec"
	"github.com/user538295/squish/internal/fsys"
	"github.com/user538295/squish/internal/resolve"
	"github.com/user538295/squish/internal/stream"
)

// Client runs compress and decompress operations. A Client is safe for
// sequential reuse; concurrent runs are safe because every run owns its own
// buffers and codec state.
type Client struct {
	registry  Registry
	fs        core.FileSystem
	env       core.Environment
	logger    *slog.Logger
	chunkSize int
	guard     core.Guard
	progress  func(int64)
}

// New creates a client with the default backends registered.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		logger:    slog.New(slog.DiscardHandler),
		chunkSize: stream.DefaultChunkSize,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", c.chunkSize)
	}
	if c.registry == nil {
		c.registry = codec.Default()
	}
	if c.fs == nil {
		c.fs = fsys.OS{}
	}
	if c.env == nil {
		c.env = fsys.Stdio{}
	}
	return c, nil
}

// Resolve computes the output plan for one run without performing any I/O.
// algorithm may be empty for decompression when the input suffix identifies
// it; explicit may be nil to request default output naming.
func (c *Client) Resolve(input SourceEndpoint, algorithm string, explicit *SinkEndpoint, dir Direction) (Plan, error) {
	return resolve.New(c.fs, c.env, c.registry).Resolve(input, algorithm, explicit, dir)
}

// InferAlgorithm maps a file name's trailing suffix to a registered
// algorithm, returning false when the suffix is unknown.
func (c *Client) InferAlgorithm(path string) (string, bool) {
	return resolve.New(c.fs, c.env, c.registry).InferAlgorithm(path)
}

// Backend returns the registered backend for name.
func (c *Client) Backend(name string) (Codec, error) {
	backend, ok := c.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return backend, nil
}

// SupportedAlgorithms returns the registered algorithm names, sorted.
func (c *Client) SupportedAlgorithms() []string {
	return c.registry.SupportedNames()
}

// Run streams src through backend in the given direction into dst. Both
// endpoints are opened at the start and released on every exit path.
func (c *Client) Run(src SourceEndpoint, dst SinkEndpoint, backend Codec, dir Direction) (Counts, error) {
	engine := &stream.Engine{
		FS:        c.fs,
		Env:       c.env,
		ChunkSize: c.chunkSize,
		Guard:     c.guard,
		Progress:  c.progress,
		Logger:    c.logger,
	}
	return engine.Run(src, dst, backend, dir)
}

// Compress resolves the destination for input and streams it through the
// named algorithm. output overrides default naming when non-nil.
func (c *Client) Compress(input SourceEndpoint, algorithm string, output *SinkEndpoint) (Plan, Counts, error) {
	return c.run(input, algorithm, output, Compress)
}

// Decompress resolves the destination for input and streams it through the
// algorithm, inferring the algorithm from the input suffix when empty.
func (c *Client) Decompress(input SourceEndpoint, algorithm string, output *SinkEndpoint) (Plan, Counts, error) {
	return c.run(input, algorithm, output, Decompress)
}

func (c *Client) run(input SourceEndpoint, algorithm string, output *SinkEndpoint, dir Direction) (Plan, Counts, error) {
	plan, err := c.Resolve(input, algorithm, output, dir)
	if err != nil {
		return Plan{}, Counts{}, err
	}
	backend, err := c.Backend(plan.Algorithm)
	if err != nil {
		return plan, Counts{}, err
	}
	counts, err := c.Run(input, plan.Sink, backend, dir)
	return plan, counts, err
}
