// Package resolve computes the concrete output plan for a run: the
// destination endpoint and, for decompression, the algorithm to use.
//
// Resolution happens entirely before any I/O, so a resolution failure never
// leaves partial output behind.
package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user538295/squish/core"
)

// Resolver derives output plans from input endpoints, explicit destinations,
// and algorithm names or file suffixes.
type Resolver struct {
	fs  core.FileSystem
	env core.Environment
	reg core.Registry
}

// New creates a resolver over the given collaborators.
func New(fs core.FileSystem, env core.Environment, reg core.Registry) *Resolver {
	return &Resolver{fs: fs, env: env, reg: reg}
}

// Resolve computes the plan for one run. algorithm may be empty for
// decompression when the input file suffix identifies it; explicit may be
// nil to request default output naming. Resolution is deterministic for a
// given (input, algorithm, explicit, pipe-state) tuple.
func (r *Resolver) Resolve(input core.SourceEndpoint, algorithm string, explicit *core.SinkEndpoint, dir core.Direction) (core.Plan, error) {
	if dir == core.Decompress {
		return r.resolveDecompress(input, algorithm, explicit)
	}
	return r.resolveCompress(input, algorithm, explicit)
}

func (r *Resolver) resolveCompress(input core.SourceEndpoint, algorithm string, explicit *core.SinkEndpoint) (core.Plan, error) {
	alg := canonical(algorithm)
	if alg == "" {
		return core.Plan{}, fmt.Errorf("%w for compression", core.ErrAlgorithmRequired)
	}
	if _, ok := r.reg.Lookup(alg); !ok {
		return core.Plan{}, fmt.Errorf("%w: %q (supported: %s)",
			core.ErrUnknownAlgorithm, alg, strings.Join(r.reg.SupportedNames(), ", "))
	}

	sink, err := r.defaultSink(input, explicit, func(path string) string {
		return path + "." + alg
	})
	if err != nil {
		return core.Plan{}, err
	}
	return core.Plan{Sink: sink, Algorithm: alg}, nil
}

func (r *Resolver) resolveDecompress(input core.SourceEndpoint, algorithm string, explicit *core.SinkEndpoint) (core.Plan, error) {
	alg := canonical(algorithm)
	if alg == "" {
		if path, ok := input.File(); ok {
			alg, _ = r.InferAlgorithm(path)
		}
		if alg == "" {
			return core.Plan{}, fmt.Errorf("%w: cannot infer it from %q", core.ErrAlgorithmRequired, input)
		}
	} else if _, ok := r.reg.Lookup(alg); !ok {
		return core.Plan{}, fmt.Errorf("%w: %q (supported: %s)",
			core.ErrUnknownAlgorithm, alg, strings.Join(r.reg.SupportedNames(), ", "))
	}

	sink, err := r.defaultSink(input, explicit, func(path string) string {
		return r.decompressedName(path, alg)
	})
	if err != nil {
		return core.Plan{}, err
	}
	return core.Plan{Sink: sink, Algorithm: alg}, nil
}

// defaultSink applies the shared destination rules: an explicit sink wins;
// a file input gets a synthesized sibling name; a standard-input source
// falls through to standard output only when stdout is a pipe.
func (r *Resolver) defaultSink(input core.SourceEndpoint, explicit *core.SinkEndpoint, name func(string) string) (core.SinkEndpoint, error) {
	if explicit != nil {
		if path, ok := explicit.File(); ok && path == "" {
			return core.SinkEndpoint{}, fmt.Errorf("%w: explicit file sink with empty path", core.ErrBadEndpoint)
		}
		return *explicit, nil
	}
	if path, ok := input.File(); ok {
		if path == "" {
			return core.SinkEndpoint{}, fmt.Errorf("%w: file source with empty path", core.ErrBadEndpoint)
		}
		return core.FileSink(name(path)), nil
	}
	if r.env.StdoutIsPipe() {
		return core.StdoutSink(), nil
	}
	return core.SinkEndpoint{}, fmt.Errorf("%w: reading standard input with no --output and a terminal on standard output", core.ErrAmbiguousOutput)
}

// decompressedName strips the algorithm suffix from path, falling back to an
// .out suffix when there is no suffix to strip or the stripped name is
// already taken on disk.
func (r *Resolver) decompressedName(path, alg string) string {
	suffix := "." + alg
	if strings.EqualFold(filepath.Ext(path), suffix) {
		stripped := path[:len(path)-len(suffix)]
		if stripped != "" && !r.fs.Exists(stripped) {
			return stripped
		}
		if stripped == "" {
			return path + ".out"
		}
		return stripped + ".out"
	}
	return path + ".out"
}

// InferAlgorithm maps a file's trailing suffix to a registered algorithm
// name. It returns false for anything unrecognized; callers must then
// require an explicit algorithm.
func (r *Resolver) InferAlgorithm(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	name := strings.ToLower(strings.TrimPrefix(ext, "."))
	if _, ok := r.reg.Lookup(name); ok {
		return name, true
	}
	return "", false
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
