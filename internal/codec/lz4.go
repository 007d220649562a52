package codec

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation check.
var _ core.Codec = (*lz4Codec)(nil)

// lz4Codec is the fast, small-window backend, using the LZ4 frame format.
type lz4Codec struct {
	level lz4.CompressionLevel
}

// NewLZ4 creates the lz4 backend.
func NewLZ4() *lz4Codec {
	return &lz4Codec{level: lz4.Fast}
}

// Name implements core.Codec.
func (c *lz4Codec) Name() string { return "lz4" }

// MaxExpansion implements core.Codec.
func (c *lz4Codec) MaxExpansion() int { return 4 }

func (c *lz4Codec) newEncoder(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(c.level)); err != nil {
		return nil, err
	}
	return zw, nil
}

func (c *lz4Codec) newDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// CompressBuffer implements core.Codec.
func (c *lz4Codec) CompressBuffer(src []byte) ([]byte, error) {
	return compressBuffer(c.newEncoder, src)
}

// DecompressBuffer implements core.Codec.
func (c *lz4Codec) DecompressBuffer(src []byte) ([]byte, error) {
	return decompressBuffer(c.newDecoder, src)
}

// BeginStream implements core.Codec.
func (c *lz4Codec) BeginStream(dir core.Direction) (core.Session, error) {
	if dir == core.Compress {
		return newWriterSession(c.newEncoder)
	}
	return newReaderSession(c.newDecoder), nil
}
