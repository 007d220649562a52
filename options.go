package squish

import (
	"log/slog"

	"github.com/user538295/squish/core"
)

// Option configures a Client.
type Option func(*Client) error

// WithRegistry replaces the default codec registry. The registry must hold
// every algorithm the client will be asked to run.
func WithRegistry(reg Registry) Option {
	return func(c *Client) error {
		c.registry = reg
		return nil
	}
}

// WithFileSystem replaces filesystem access for file endpoints. Used by
// tests to run against in-memory files.
func WithFileSystem(fs core.FileSystem) Option {
	return func(c *Client) error {
		c.fs = fs
		return nil
	}
}

// WithEnvironment replaces the process-environment probe used for the
// standard streams.
func WithEnvironment(env core.Environment) Option {
	return func(c *Client) error {
		c.env = env
		return nil
	}
}

// WithChunkSize sets the per-iteration read size, the single lever
// controlling the streaming loop's peak memory.
func WithChunkSize(n int) Option {
	return func(c *Client) error {
		c.chunkSize = n
		return nil
	}
}

// WithGuard installs a per-chunk policy hook, consulted after every codec
// step and before the corresponding sink write. See RatioGuard.
func WithGuard(g core.Guard) Option {
	return func(c *Client) error {
		c.guard = g
		return nil
	}
}

// WithProgress installs a callback receiving the cumulative sink byte count
// after every write.
func WithProgress(fn func(bytesOut int64)) Option {
	return func(c *Client) error {
		c.progress = fn
		return nil
	}
}

// WithLogger sets a logger for the client. By default, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}
