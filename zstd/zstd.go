// Package zstd compresses generated output with Zstandard so large datasets
// can be shipped as on-demand resources.
package zstd

import (
	"io"
	"strings"

	"github.com/imandefterim/qurandata"
	"github.com/klauspost/compress/zstd"
)

// Extension is the file name suffix of compressed output.
const Extension = ".zst"

// Ensure Encoder implements qurandata.Encoder at compile time.
var _ qurandata.Encoder = (*Encoder)(nil)

// Encoder compresses the output of another Encoder.
type Encoder struct {
	next  qurandata.Encoder
	level zstd.EncoderLevel
}

// NewEncoder wraps next with the default compression level.
func NewEncoder(next qurandata.Encoder) *Encoder {
	return &Encoder{next: next, level: zstd.SpeedBetterCompression}
}

// Encode writes the compressed output of the wrapped encoder to w.
func (e *Encoder) Encode(w io.Writer, surahs []*qurandata.Surah) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(e.level))
	if err != nil {
		return err
	}
	if err := e.next.Encode(zw, surahs); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// NewReader returns a reader that decompresses r.
// The caller must close the returned reader.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr.IOReadCloser(), nil
}

// IsCompressed reports whether path names a compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, Extension)
}
