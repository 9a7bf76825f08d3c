package mock

import (
	"io"

	"github.com/imandefterim/qurandata"
)

var _ qurandata.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of qurandata.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, surahs []*qurandata.Surah) error
}

func (e *Encoder) Encode(w io.Writer, surahs []*qurandata.Surah) error {
	return e.EncodeFn(w, surahs)
}
