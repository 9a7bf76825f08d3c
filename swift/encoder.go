// Package swift renders surahs as a Swift source file that embeds the
// complete dataset as static literals.
package swift

import (
	"bufio"
	"io"
	"strings"
	"text/template"

	"github.com/imandefterim/qurandata"
)

// Ensure Encoder implements qurandata.Encoder at compile time.
var _ qurandata.Encoder = (*Encoder)(nil)

// Encoder writes QuranData.swift.
type Encoder struct {
	labels qurandata.RevelationLabels
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLabels sets the revelation labels. Defaults to qurandata.AdjectiveLabels.
func WithLabels(l qurandata.RevelationLabels) Option {
	return func(e *Encoder) {
		e.labels = l
	}
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{labels: qurandata.AdjectiveLabels}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode renders surahs to w.
func (e *Encoder) Encode(w io.Writer, surahs []*qurandata.Surah) error {
	bw := bufio.NewWriter(w)
	if err := sourceTemplate.Execute(bw, templateData{Surahs: surahs, Labels: e.labels}); err != nil {
		return err
	}
	return bw.Flush()
}

// Escape escapes s for use inside a Swift string literal.
func Escape(s string) string {
	return escaper.Replace(s)
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

type templateData struct {
	Surahs []*qurandata.Surah
	Labels qurandata.RevelationLabels
}

var sourceTemplate = template.Must(template.New("QuranData.swift").
	Funcs(template.FuncMap{"swift": Escape}).
	Parse(sourceText))

const sourceText = `import Foundation

// MARK: - Surah Model
struct Surah: Identifiable {
    let id: Int
    let name: String
    let arabicName: String
    let meaning: String
    let verseCount: Int
    let revelationType: String  // Mekki / Medeni
    var verses: [Verse]

    var displayName: String {
        "\(id). \(name)"
    }
}

// MARK: - Verse (Ayet) Model
struct Verse: Identifiable {
    let id: Int
    let surahId: Int
    let number: Int
    let arabicText: String?
    let turkishMeal: String

    var reference: String {
        "\(surahId):\(number)"
    }
}

// MARK: - All Quran Data (114 Surahs)
struct QuranData {
    static let allSurahs: [Surah] = [
{{- $labels := .Labels }}
{{- range .Surahs }}
        Surah(
            id: {{ .ID }},
            name: "{{ swift .Name }}",
            arabicName: "{{ swift .ArabicName }}",
            meaning: "{{ swift .Meaning }}",
            verseCount: {{ .VerseCount }},
            revelationType: "{{ $labels.Label .Revelation }}",
            verses: [
{{- range .Verses }}
                Verse(id: {{ .ID }}, surahId: {{ .SurahID }}, number: {{ .Number }}, arabicText: "{{ swift .ArabicText }}", turkishMeal: "{{ swift .Translation }}"),
{{- end }}
            ]
        ),
{{- end }}
    ]

    static func getSurah(by id: Int) -> Surah? {
        allSurahs.first { $0.id == id }
    }

    static func searchSurahs(_ query: String) -> [Surah] {
        if query.isEmpty { return allSurahs }
        return allSurahs.filter {
            $0.name.localizedCaseInsensitiveContains(query) ||
            $0.meaning.localizedCaseInsensitiveContains(query) ||
            $0.arabicName.contains(query)
        }
    }
}
`
