package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/user538295/squish/core"
)

// Compile-time interface implementation check.
var _ core.Codec = (*lzfseCodec)(nil)

// lzfseCodec is the balanced speed/ratio backend. It keeps the lzfse name
// and suffix for CLI compatibility but uses the zstd container, which
// occupies the same point in the speed/ratio space. Files produced under
// this name are not interchangeable with other lzfse tools.
type lzfseCodec struct {
	level zstd.EncoderLevel
}

// NewLZFSE creates the lzfse backend.
func NewLZFSE() *lzfseCodec {
	return &lzfseCodec{level: zstd.SpeedDefault}
}

// Name implements core.Codec.
func (c *lzfseCodec) Name() string { return "lzfse" }

// MaxExpansion implements core.Codec.
func (c *lzfseCodec) MaxExpansion() int { return 8 }

func (c *lzfseCodec) newEncoder(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(c.level),
		zstd.WithEncoderConcurrency(1),
	)
}

func (c *lzfseCodec) newDecoder(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &zstdReadCloser{dec}, nil
}

// CompressBuffer implements core.Codec.
func (c *lzfseCodec) CompressBuffer(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(c.level),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEncode, err)
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

// DecompressBuffer implements core.Codec.
func (c *lzfseCodec) DecompressBuffer(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecode, err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrDecode, err)
	}
	return out, nil
}

// BeginStream implements core.Codec.
func (c *lzfseCodec) BeginStream(dir core.Direction) (core.Session, error) {
	if dir == core.Compress {
		return newWriterSession(c.newEncoder)
	}
	return newReaderSession(c.newDecoder), nil
}

// zstdReadCloser adapts zstd.Decoder's errorless Close to io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
