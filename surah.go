package qurandata

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// SurahCount is the number of chapters in the Quran. Chapter IDs form the
// contiguous range 1..SurahCount.
const SurahCount = 114

// Surah represents a chapter with its localized metadata and verses.
type Surah struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	ArabicName string     `json:"arabicName"`
	Meaning    string     `json:"meaning"`
	VerseCount int        `json:"verseCount"`
	Revelation Revelation `json:"-"`
	Verses     []*Verse   `json:"verses"`
}

// DisplayName returns the surah name prefixed with its number, e.g. "1. Fatiha".
func (s *Surah) DisplayName() string {
	return strconv.Itoa(s.ID) + ". " + s.Name
}

// Validate returns an error if the surah contains invalid fields.
func (s *Surah) Validate() error {
	if s.ID < 1 || s.ID > SurahCount {
		return Errorf(EINVALID, "surah id %d out of range 1..%d", s.ID, SurahCount)
	}
	if s.Name == "" {
		return Errorf(EINVALID, "surah %d name required", s.ID)
	}
	return nil
}

// Verse represents a single verse (ayah) of a surah.
type Verse struct {
	ID          int    `json:"id"`
	SurahID     int    `json:"surahId"`
	Number      int    `json:"number"`
	ArabicText  string `json:"arabicText"`
	Translation string `json:"turkishMeal"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// Reference returns the "surah:verse" reference, e.g. "2:255".
func (v *Verse) Reference() string {
	return strconv.Itoa(v.SurahID) + ":" + strconv.Itoa(v.Number)
}

// Revelation classifies where a surah was revealed.
type Revelation int

// Revelation values. The zero value means the place is unknown.
const (
	RevelationUnknown Revelation = iota
	Meccan
	Medinan
)

// String returns the English name of the revelation place.
func (r Revelation) String() string {
	switch r {
	case Meccan:
		return "Meccan"
	case Medinan:
		return "Medinan"
	}
	return ""
}

// ParseRevelation parses the spellings used by upstream APIs,
// e.g. "Meccan", "Mecca", "Medinan", "Madina".
func ParseRevelation(s string) (Revelation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meccan", "mecca", "makkah", "makki":
		return Meccan, nil
	case "medinan", "medina", "madina", "madinah", "madani":
		return Medinan, nil
	}
	return RevelationUnknown, Errorf(EINVALID, "unknown revelation type %q", s)
}

// RevelationLabels holds the localized labels used when emitting a revelation place.
type RevelationLabels struct {
	Meccan  string
	Medinan string
}

// Label returns the label for r, or an empty string if r is unknown.
func (l RevelationLabels) Label(r Revelation) string {
	switch r {
	case Meccan:
		return l.Meccan
	case Medinan:
		return l.Medinan
	}
	return ""
}

// Turkish label sets. Generated Swift sources use the adjective form while
// the JSON resource uses the place name.
var (
	AdjectiveLabels = RevelationLabels{Meccan: "Mekki", Medinan: "Medeni"}
	PlaceLabels     = RevelationLabels{Meccan: "Mekke", Medinan: "Medine"}
)

// ValidateSurahs returns an error unless surahs holds exactly SurahCount
// valid chapters ordered by ID 1..SurahCount.
func ValidateSurahs(surahs []*Surah) error {
	if len(surahs) != SurahCount {
		return Errorf(EINVALID, "expected %d surahs, got %d", SurahCount, len(surahs))
	}
	for i, s := range surahs {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.ID != i+1 {
			return Errorf(EINVALID, "surah at position %d has id %d", i+1, s.ID)
		}
	}
	return nil
}

// TotalVerses returns the sum of verse counts across surahs.
func TotalVerses(surahs []*Surah) int {
	var n int
	for _, s := range surahs {
		n += s.VerseCount
	}
	return n
}

// FindSurah returns the surah with the given ID.
// Returns ENOTFOUND if no surah matches.
func FindSurah(surahs []*Surah, id int) (*Surah, error) {
	for _, s := range surahs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "surah %d not found", id)
}

// FindVerse returns the verse with the given number within surah.
// Returns ENOTFOUND if no verse matches.
func FindVerse(surah *Surah, number int) (*Verse, error) {
	for _, v := range surah.Verses {
		if v.Number == number {
			return v, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "verse %d:%d not found", surah.ID, number)
}

// Build records one import of a full dataset into storage.
type Build struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Surahs    int       `json:"surahs"`
	Verses    int       `json:"verses"`
	CreatedAt time.Time `json:"createdAt"`
}

// SurahService represents a service for storing and querying surahs.
type SurahService interface {
	// ReplaceSurahs atomically replaces all stored surahs and verses
	// and records the import as a new Build.
	ReplaceSurahs(ctx context.Context, source string, surahs []*Surah) (*Build, error)

	// FindSurahByID retrieves a surah with its verses.
	// Returns ENOTFOUND if the surah does not exist.
	FindSurahByID(ctx context.Context, id int) (*Surah, error)

	// FindSurahs retrieves surahs matching the filter, without verses.
	FindSurahs(ctx context.Context, filter SurahFilter) ([]*Surah, error)

	// FindVerse retrieves a single verse.
	// Returns ENOTFOUND if the verse does not exist.
	FindVerse(ctx context.Context, surahID, number int) (*Verse, error)

	// FindBuilds returns recorded imports, newest first.
	FindBuilds(ctx context.Context) ([]*Build, error)
}

// SurahFilter represents a filter for FindSurahs.
type SurahFilter struct {
	Query string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
