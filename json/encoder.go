// Package json reads and writes the surah dataset as a JSON array, the
// bundled resource format loaded by the apps.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/imandefterim/qurandata"
)

// Ensure Encoder implements qurandata.Encoder at compile time.
var _ qurandata.Encoder = (*Encoder)(nil)

// Encoder writes surahs as an indented JSON array.
type Encoder struct {
	labels   qurandata.RevelationLabels
	indent   string
	validate bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLabels sets the revelation labels. Defaults to qurandata.PlaceLabels.
func WithLabels(l qurandata.RevelationLabels) Option {
	return func(e *Encoder) {
		e.labels = l
	}
}

// WithIndent sets the indentation string. An empty string writes compact JSON.
func WithIndent(indent string) Option {
	return func(e *Encoder) {
		e.indent = indent
	}
}

// WithValidation checks every document against the resource schema before
// writing it. Nothing is written when the check fails.
func WithValidation() Option {
	return func(e *Encoder) {
		e.validate = true
	}
}

// NewEncoder creates a new Encoder with two-space indentation.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		labels: qurandata.PlaceLabels,
		indent: "  ",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// surah is the wire shape of a surah. Verses use the domain type directly.
type surah struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	ArabicName     string             `json:"arabicName"`
	Meaning        string             `json:"meaning"`
	VerseCount     int                `json:"verseCount"`
	RevelationType string             `json:"revelationType"`
	Verses         []*qurandata.Verse `json:"verses"`
}

// Encode writes surahs to w. Non-ASCII text is written verbatim and HTML
// characters are not escaped.
func (e *Encoder) Encode(w io.Writer, surahs []*qurandata.Surah) error {
	out := make([]surah, 0, len(surahs))
	for _, s := range surahs {
		verses := s.Verses
		if verses == nil {
			verses = []*qurandata.Verse{}
		}
		out = append(out, surah{
			ID:             s.ID,
			Name:           s.Name,
			ArabicName:     s.ArabicName,
			Meaning:        s.Meaning,
			VerseCount:     s.VerseCount,
			RevelationType: e.labels.Label(s.Revelation),
			Verses:         verses,
		})
	}

	if !e.validate {
		return e.encode(w, out)
	}

	var buf bytes.Buffer
	if err := e.encode(&buf, out); err != nil {
		return err
	}
	if err := Validate(buf.Bytes()); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (e *Encoder) encode(w io.Writer, out []surah) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.indent != "" {
		enc.SetIndent("", e.indent)
	}
	return enc.Encode(out)
}
