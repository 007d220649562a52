package codec

import (
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation check.
var _ core.Codec = (*zlibCodec)(nil)

// zlibCodec is the cross-tool-compatible backend: plain RFC 1950 zlib
// streams readable by any zlib implementation.
type zlibCodec struct {
	level int
}

// NewZlib creates the zlib backend.
func NewZlib() *zlibCodec {
	return &zlibCodec{level: zlib.DefaultCompression}
}

// Name implements core.Codec.
func (c *zlibCodec) Name() string { return "zlib" }

// MaxExpansion implements core.Codec.
func (c *zlibCodec) MaxExpansion() int { return 4 }

func (c *zlibCodec) newEncoder(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriterLevel(w, c.level)
}

func (c *zlibCodec) newDecoder(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// CompressBuffer implements core.Codec.
func (c *zlibCodec) CompressBuffer(src []byte) ([]byte, error) {
	return compressBuffer(c.newEncoder, src)
}

// DecompressBuffer implements core.Codec.
func (c *zlibCodec) DecompressBuffer(src []byte) ([]byte, error) {
	return decompressBuffer(c.newDecoder, src)
}

// BeginStream implements core.Codec.
func (c *zlibCodec) BeginStream(dir core.Direction) (core.Session, error) {
	if dir == core.Compress {
		return newWriterSession(c.newEncoder)
	}
	return newReaderSession(c.newDecoder), nil
}
