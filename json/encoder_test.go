package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/imandefterim/qurandata"
	qjson "github.com/imandefterim/qurandata/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSurahs() []*qurandata.Surah {
	return []*qurandata.Surah{
		{
			ID:         1,
			Name:       "Fatiha",
			ArabicName: "سُورَةُ ٱلْفَاتِحَةِ",
			VerseCount: 1,
			Revelation: qurandata.Meccan,
			Verses: []*qurandata.Verse{{
				ID:          1,
				SurahID:     1,
				Number:      1,
				ArabicText:  "بِسْمِ ٱللَّهِ",
				Translation: "Rahmân & Rahîm <Allah>",
				AudioURL:    "https://cdn.islamic.network/quran/audio/128/ar.alafasy/1.mp3",
			}},
		},
		{ID: 2, Name: "Bakara", Revelation: qurandata.Medinan},
	}
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes app resource shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder().Encode(&buf, testSurahs()))

		assert.JSONEq(t, `[
			{
				"id": 1, "name": "Fatiha", "arabicName": "سُورَةُ ٱلْفَاتِحَةِ", "meaning": "",
				"verseCount": 1, "revelationType": "Mekke",
				"verses": [{
					"id": 1, "surahId": 1, "number": 1,
					"arabicText": "بِسْمِ ٱللَّهِ",
					"turkishMeal": "Rahmân & Rahîm <Allah>",
					"audioUrl": "https://cdn.islamic.network/quran/audio/128/ar.alafasy/1.mp3"
				}]
			},
			{
				"id": 2, "name": "Bakara", "arabicName": "", "meaning": "",
				"verseCount": 0, "revelationType": "Medine", "verses": []
			}
		]`, buf.String())
	})

	t.Run("preserves non-ASCII and HTML characters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder().Encode(&buf, testSurahs()))

		out := buf.String()
		assert.Contains(t, out, "بِسْمِ ٱللَّهِ")
		assert.Contains(t, out, "Rahmân & Rahîm <Allah>")
		assert.NotContains(t, out, `\u`)
	})

	t.Run("indents with two spaces by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder().Encode(&buf, testSurahs()))

		assert.True(t, strings.HasPrefix(buf.String(), "[\n  {\n    \"id\": 1,"))
	})

	t.Run("writes compact JSON without indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder(qjson.WithIndent("")).Encode(&buf, testSurahs()))

		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})

	t.Run("omits empty audio URL", func(t *testing.T) {
		t.Parallel()

		surahs := testSurahs()
		surahs[0].Verses[0].AudioURL = ""

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder().Encode(&buf, surahs))

		assert.NotContains(t, buf.String(), "audioUrl")
	})

	t.Run("uses configured labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder(qjson.WithLabels(qurandata.AdjectiveLabels)).Encode(&buf, testSurahs()))

		assert.Contains(t, buf.String(), `"revelationType": "Mekki"`)
	})
}

func TestReadSurahs(t *testing.T) {
	t.Parallel()

	t.Run("reads encoder output back", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder(qjson.WithLabels(qurandata.AdjectiveLabels)).Encode(&buf, testSurahs()))

		surahs, err := qjson.ReadSurahs(&buf)
		require.NoError(t, err)

		require.Len(t, surahs, 2)
		assert.Equal(t, qurandata.Meccan, surahs[0].Revelation)
		assert.Equal(t, qurandata.Medinan, surahs[1].Revelation)
		assert.Equal(t, "1:1", surahs[0].Verses[0].Reference())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		_, err := qjson.ReadSurahs(strings.NewReader("{"))
		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
	})
}

func TestReadNames(t *testing.T) {
	t.Parallel()

	t.Run("maps ids to names", func(t *testing.T) {
		t.Parallel()

		names, err := qjson.ReadNames(strings.NewReader(`[{"id":1,"name":"Fatiha","verses":[]},{"id":2,"name":"Bakara"}]`))
		require.NoError(t, err)
		assert.Equal(t, map[int]string{1: "Fatiha", 2: "Bakara"}, names)
	})

	t.Run("rejects non-array input", func(t *testing.T) {
		t.Parallel()

		_, err := qjson.ReadNames(strings.NewReader(`{"id":1}`))
		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
	})
}
