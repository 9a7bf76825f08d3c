package main_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/imandefterim/qurandata"
	"github.com/imandefterim/qurandata/mock"
	"github.com/imandefterim/qurandata/quranapi"
)

// testSurahs returns a complete dataset with one verse per surah.
func testSurahs() []*qurandata.Surah {
	surahs := make([]*qurandata.Surah, 0, qurandata.SurahCount)
	for id := 1; id <= qurandata.SurahCount; id++ {
		name, meaning := qurandata.SurahNameOrDefault(id)
		surahs = append(surahs, &qurandata.Surah{
			ID:         id,
			Name:       name,
			Meaning:    meaning,
			VerseCount: 1,
			Revelation: qurandata.Meccan,
			Verses: []*qurandata.Verse{
				{ID: 1, SurahID: id, Number: 1, ArabicText: "ar", Translation: "tr"},
			},
		})
	}
	return surahs
}

// fakeQuranAPI serves the three quran-api documents with two verses per
// chapter.
func fakeQuranAPI() *mock.Fetcher {
	edition := func(prefix string) string {
		var parts []string
		for ch := 1; ch <= qurandata.SurahCount; ch++ {
			for v := 1; v <= 2; v++ {
				parts = append(parts, fmt.Sprintf(`{"chapter":%d,"verse":%d,"text":"%s %d:%d"}`, ch, v, prefix, ch, v))
			}
		}
		return `{"quran":[` + strings.Join(parts, ",") + `]}`
	}

	var chapters []string
	for ch := 1; ch <= qurandata.SurahCount; ch++ {
		rev := "Mecca"
		if ch == 2 {
			rev = "Madina"
		}
		chapters = append(chapters, fmt.Sprintf(
			`{"chapter":%d,"arabicname":"سورة %d","revelation":"%s","verses":[{"verse":1},{"verse":2}]}`,
			ch, ch, rev))
	}
	info := `{"chapters":[` + strings.Join(chapters, ",") + `]}`

	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) ([]byte, error) {
			switch url {
			case quranapi.DefaultBaseURL + "/editions/" + quranapi.DefaultTranslationEdition + ".json":
				return []byte(edition("tr")), nil
			case quranapi.DefaultBaseURL + "/editions/" + quranapi.DefaultArabicEdition + ".json":
				return []byte(edition("ar")), nil
			case quranapi.DefaultBaseURL + "/info.json":
				return []byte(info), nil
			}
			return nil, fmt.Errorf("unexpected url %s", url)
		},
	}
}
