// Package squish provides streaming file compression and decompression
// over four interchangeable algorithm backends.
//
// The streaming core processes arbitrarily large inputs in fixed-size
// chunks, so peak memory is bounded regardless of input size. Sources and
// destinations are endpoints: a file path or the process's standard
// streams.
//
// # Basic Usage
//
// Create a client and compress a file:
//
//	client, err := squish.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// a.txt -> a.txt.lz4
//	plan, counts, err := client.Compress(squish.FileSource("a.txt"), "lz4", nil)
//
//	// a.txt.lz4 -> a.txt (algorithm inferred from the suffix)
//	plan, counts, err = client.Decompress(squish.FileSource("a.txt.lz4"), "", nil)
//
// # Algorithms
//
// Four backends are registered by default: lz4 (fast), lzfse (balanced),
// zlib (compatible with other zlib tools), and lzma (maximum ratio). The
// backend name doubles as the default output suffix. Build a custom
// registry with NewRegistry and WithRegistry to swap or add backends.
//
// # Resolution
//
// Resolve computes the destination and algorithm before any I/O begins:
// explicit destinations win, file inputs get suffix-derived siblings, and a
// standard-input source falls through to standard output only when stdout
// is a pipe.
package squish
