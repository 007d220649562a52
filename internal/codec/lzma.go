package codec

import (
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation check.
var _ core.Codec = (*lzmaCodec)(nil)

// lzmaCodec is the maximum-ratio backend, producing classic .lzma streams
// with an end-of-stream marker so unbounded streaming works.
type lzmaCodec struct{}

// NewLZMA creates the lzma backend.
func NewLZMA() *lzmaCodec {
	return &lzmaCodec{}
}

// Name implements core.Codec.
func (c *lzmaCodec) Name() string { return "lzma" }

// MaxExpansion implements core.Codec.
func (c *lzmaCodec) MaxExpansion() int { return 8 }

func (c *lzmaCodec) newEncoder(w io.Writer) (io.WriteCloser, error) {
	return lzma.NewWriter(w)
}

func (c *lzmaCodec) newDecoder(r io.Reader) (io.ReadCloser, error) {
	zr, err := lzma.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(zr), nil
}

// CompressBuffer implements core.Codec.
func (c *lzmaCodec) CompressBuffer(src []byte) ([]byte, error) {
	return compressBuffer(c.newEncoder, src)
}

// DecompressBuffer implements core.Codec.
func (c *lzmaCodec) DecompressBuffer(src []byte) ([]byte, error) {
	return decompressBuffer(c.newDecoder, src)
}

// BeginStream implements core.Codec.
func (c *lzmaCodec) BeginStream(dir core.Direction) (core.Session, error) {
	if dir == core.Compress {
		return newWriterSession(c.newEncoder)
	}
	return newReaderSession(c.newDecoder), nil
}
