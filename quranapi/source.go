// Package quranapi implements qurandata.Source on top of the
// fawazahmed0/quran-api documents served from the jsDelivr CDN.
package quranapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imandefterim/qurandata"
)

// Defaults matching the published Elmalılı Hamdi Yazır translation setup.
const (
	DefaultBaseURL            = "https://cdn.jsdelivr.net/gh/fawazahmed0/quran-api@1"
	DefaultTranslationEdition = "tur-elmalilihamdiya-la"
	DefaultArabicEdition      = "ara-qurandoori"
)

// Ensure Source implements qurandata.Source at compile time.
var _ qurandata.Source = (*Source)(nil)

// Source fetches a translation edition, an Arabic edition and the chapter
// info document, then merges them with the Turkish surah name table.
type Source struct {
	fetcher     qurandata.Fetcher
	baseURL     string
	translation string
	arabic      string
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithEditions overrides the translation and Arabic edition names.
func WithEditions(translation, arabic string) Option {
	return func(s *Source) {
		s.translation = translation
		s.arabic = arabic
	}
}

// NewSource creates a new Source using fetcher for all requests.
func NewSource(fetcher qurandata.Fetcher, opts ...Option) *Source {
	s := &Source{
		fetcher:     fetcher,
		baseURL:     DefaultBaseURL,
		translation: DefaultTranslationEdition,
		arabic:      DefaultArabicEdition,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EditionURL returns the URL of an edition document.
func (s *Source) EditionURL(edition string) string {
	return s.baseURL + "/editions/" + edition + ".json"
}

// InfoURL returns the URL of the chapter info document.
func (s *Source) InfoURL() string {
	return s.baseURL + "/info.json"
}

// FetchSurahs downloads the three documents and builds all surahs.
// Progress is reported once per document and once per assembled chapter.
func (s *Source) FetchSurahs(ctx context.Context, progress qurandata.ProgressFunc) ([]*qurandata.Surah, error) {
	translation, err := s.fetchEdition(ctx, s.translation)
	if err != nil {
		return nil, err
	}
	arabic, err := s.fetchEdition(ctx, s.arabic)
	if err != nil {
		return nil, err
	}
	info, err := s.fetchInfo(ctx)
	if err != nil {
		return nil, err
	}

	trByChapter := qurandata.IndexByChapter(translation)
	arByChapter := qurandata.IndexByChapter(arabic)

	surahs := make([]*qurandata.Surah, 0, qurandata.SurahCount)
	for id := 1; id <= qurandata.SurahCount; id++ {
		ch, ok := info[id]
		if !ok {
			return nil, qurandata.Errorf(qurandata.ENOTFOUND, "chapter %d missing from info.json", id)
		}

		revelation, err := qurandata.ParseRevelation(ch.Revelation)
		if err != nil {
			return nil, fmt.Errorf("chapter %d: %w", id, err)
		}

		name, meaning := qurandata.SurahNameOrDefault(id)
		surahs = append(surahs, &qurandata.Surah{
			ID:         id,
			Name:       name,
			ArabicName: ch.ArabicName,
			Meaning:    meaning,
			VerseCount: len(ch.Verses),
			Revelation: revelation,
			Verses:     qurandata.MergeByNumber(id, trByChapter[id], arByChapter[id]),
		})

		if progress != nil {
			progress(qurandata.Progress{Chapter: id, Completed: id, Total: qurandata.SurahCount})
		}
	}

	return surahs, nil
}

// editionDocument is the shape of an edition JSON document.
type editionDocument struct {
	Quran []struct {
		Chapter int    `json:"chapter"`
		Verse   int    `json:"verse"`
		Text    string `json:"text"`
	} `json:"quran"`
}

// infoDocument is the shape of info.json.
type infoDocument struct {
	Chapters []chapterInfo `json:"chapters"`
}

type chapterInfo struct {
	Chapter    int               `json:"chapter"`
	ArabicName string            `json:"arabicname"`
	Revelation string            `json:"revelation"`
	Verses     []json.RawMessage `json:"verses"`
}

func (s *Source) fetchEdition(ctx context.Context, edition string) ([]qurandata.EditionVerse, error) {
	body, err := s.fetcher.Fetch(ctx, s.EditionURL(edition))
	if err != nil {
		return nil, fmt.Errorf("fetch edition %s: %w", edition, err)
	}

	var doc editionDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "decode edition %s: %s", edition, err)
	}
	if len(doc.Quran) == 0 {
		return nil, qurandata.Errorf(qurandata.EINVALID, "edition %s has no verses", edition)
	}

	verses := make([]qurandata.EditionVerse, 0, len(doc.Quran))
	for _, v := range doc.Quran {
		verses = append(verses, qurandata.EditionVerse{Chapter: v.Chapter, Verse: v.Verse, Text: v.Text})
	}
	return verses, nil
}

func (s *Source) fetchInfo(ctx context.Context) (map[int]chapterInfo, error) {
	body, err := s.fetcher.Fetch(ctx, s.InfoURL())
	if err != nil {
		return nil, fmt.Errorf("fetch info: %w", err)
	}

	var doc infoDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "decode info: %s", err)
	}

	info := make(map[int]chapterInfo, len(doc.Chapters))
	for _, ch := range doc.Chapters {
		info[ch.Chapter] = ch
	}
	return info, nil
}
