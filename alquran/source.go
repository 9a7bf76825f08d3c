// Package alquran implements qurandata.Source on top of the
// api.alquran.cloud REST API, fetching one surah at a time with the
// Arabic text, translation and recitation editions side by side.
package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imandefterim/qurandata"
)

// Defaults for the Uthmani script, Elmalılı Hamdi Yazır translation and
// Mishary Alafasy recitation.
const (
	DefaultBaseURL            = "http://api.alquran.cloud/v1"
	DefaultTextEdition        = "quran-uthmani"
	DefaultTranslationEdition = "tr.yazir"
	DefaultAudioEdition       = "ar.alafasy"
)

// Ensure Source implements qurandata.Source at compile time.
var _ qurandata.Source = (*Source)(nil)

// Source fetches every surah with three editions and aligns their verses.
type Source struct {
	fetcher     qurandata.Fetcher
	baseURL     string
	text        string
	translation string
	audio       string
	names       map[int]string
	onMismatch  qurandata.MismatchFunc
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithEditions overrides the text, translation and audio edition identifiers.
func WithEditions(text, translation, audio string) Option {
	return func(s *Source) {
		s.text = text
		s.translation = translation
		s.audio = audio
	}
}

// WithNames sets surah names that take precedence over the API's English names.
func WithNames(names map[int]string) Option {
	return func(s *Source) {
		s.names = names
	}
}

// WithMismatchFunc sets the function called when editions disagree on
// verse numbering. Mismatches never abort a run.
func WithMismatchFunc(fn qurandata.MismatchFunc) Option {
	return func(s *Source) {
		s.onMismatch = fn
	}
}

// NewSource creates a new Source using fetcher for all requests.
// Pacing between requests is the fetcher's concern.
func NewSource(fetcher qurandata.Fetcher, opts ...Option) *Source {
	s := &Source{
		fetcher:     fetcher,
		baseURL:     DefaultBaseURL,
		text:        DefaultTextEdition,
		translation: DefaultTranslationEdition,
		audio:       DefaultAudioEdition,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SurahURL returns the URL of surah id with all three editions.
func (s *Source) SurahURL(id int) string {
	return fmt.Sprintf("%s/surah/%d/editions/%s,%s,%s", s.baseURL, id, s.text, s.translation, s.audio)
}

// FetchSurahs fetches surahs 1..114 in order. The first failed request or
// incomplete response aborts the run.
func (s *Source) FetchSurahs(ctx context.Context, progress qurandata.ProgressFunc) ([]*qurandata.Surah, error) {
	surahs := make([]*qurandata.Surah, 0, qurandata.SurahCount)
	for id := 1; id <= qurandata.SurahCount; id++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if progress != nil {
			progress(qurandata.Progress{Chapter: id, Completed: id - 1, Total: qurandata.SurahCount})
		}

		surah, err := s.fetchSurah(ctx, id)
		if err != nil {
			return nil, err
		}
		surahs = append(surahs, surah)
	}

	if progress != nil {
		progress(qurandata.Progress{Chapter: qurandata.SurahCount, Completed: qurandata.SurahCount, Total: qurandata.SurahCount})
	}
	return surahs, nil
}

// response is the envelope returned by the API.
type response struct {
	Code   int       `json:"code"`
	Status string    `json:"status"`
	Data   []edition `json:"data"`
}

type edition struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
	RevelationType string `json:"revelationType"`
	Ayahs          []ayah `json:"ayahs"`
	Edition        struct {
		Identifier string `json:"identifier"`
	} `json:"edition"`
}

type ayah struct {
	Number        int    `json:"number"`
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
	Audio         string `json:"audio"`
}

func (s *Source) fetchSurah(ctx context.Context, id int) (*qurandata.Surah, error) {
	body, err := s.fetcher.Fetch(ctx, s.SurahURL(id))
	if err != nil {
		return nil, fmt.Errorf("fetch surah %d: %w", id, err)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "decode surah %d: %s", id, err)
	}
	if len(resp.Data) < 3 {
		return nil, qurandata.Errorf(qurandata.EINVALID, "surah %d: expected 3 editions, got %d", id, len(resp.Data))
	}

	text := findEdition(resp.Data, s.text)
	translation := findEdition(resp.Data, s.translation)
	audio := findEdition(resp.Data, s.audio)
	if text == nil || translation == nil || audio == nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "surah %d: missing one of editions %s, %s, %s", id, s.text, s.translation, s.audio)
	}

	revelation, err := qurandata.ParseRevelation(text.RevelationType)
	if err != nil {
		return nil, fmt.Errorf("surah %d: %w", id, err)
	}

	name := text.EnglishName
	if n, ok := s.names[text.Number]; ok && n != "" {
		name = n
	}

	verses, mismatches := qurandata.AlignEditions(id,
		editionVerses(id, text), editionVerses(id, translation), editionVerses(id, audio))
	if s.onMismatch != nil {
		for _, m := range mismatches {
			s.onMismatch(m)
		}
	}

	return &qurandata.Surah{
		ID:         text.Number,
		Name:       name,
		ArabicName: text.Name,
		VerseCount: text.NumberOfAyahs,
		Revelation: revelation,
		Verses:     verses,
	}, nil
}

func findEdition(editions []edition, identifier string) *edition {
	for i := range editions {
		if editions[i].Edition.Identifier == identifier {
			return &editions[i]
		}
	}
	return nil
}

func editionVerses(chapter int, e *edition) []qurandata.EditionVerse {
	verses := make([]qurandata.EditionVerse, 0, len(e.Ayahs))
	for _, a := range e.Ayahs {
		verses = append(verses, qurandata.EditionVerse{
			Chapter: chapter,
			Verse:   a.NumberInSurah,
			Text:    a.Text,
			Audio:   a.Audio,
		})
	}
	return verses
}
