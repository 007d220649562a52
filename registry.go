package squish

import "github.com/user538295/squish/internal/codec"

// NewRegistry creates an empty codec registry.
func NewRegistry() Registry {
	return codec.NewRegistry()
}

// DefaultRegistry creates a registry with all built-in backends: lz4,
// lzfse, zlib, and lzma.
func DefaultRegistry() Registry {
	return codec.Default()
}
