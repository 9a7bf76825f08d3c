package qurandata

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SearchSurahs returns the surahs whose Turkish name or meaning contains query,
// ignoring case with Turkish casing rules, or whose Arabic name contains query
// verbatim. An empty query returns all surahs.
func SearchSurahs(surahs []*Surah, query string) []*Surah {
	if query == "" {
		return surahs
	}

	fold := cases.Lower(language.Turkish)
	q := fold.String(query)

	var matches []*Surah
	for _, s := range surahs {
		if strings.Contains(fold.String(s.Name), q) ||
			strings.Contains(fold.String(s.Meaning), q) ||
			strings.Contains(s.ArabicName, query) {
			matches = append(matches, s)
		}
	}
	return matches
}
