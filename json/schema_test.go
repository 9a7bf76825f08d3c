package json_test

import (
	"bytes"
	"testing"

	"github.com/imandefterim/qurandata"
	qjson "github.com/imandefterim/qurandata/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts encoder output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder().Encode(&buf, testSurahs()))

		assert.NoError(t, qjson.Validate(buf.Bytes()))
	})

	t.Run("rejects a verse without translation", func(t *testing.T) {
		t.Parallel()

		doc := `[{"id":1,"name":"Fatiha","arabicName":"","meaning":"","verseCount":1,"revelationType":"Mekke",
			"verses":[{"id":1,"surahId":1,"number":1,"arabicText":"x"}]}]`

		err := qjson.Validate([]byte(doc))

		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
		assert.Contains(t, qurandata.ErrorMessage(err), "turkishMeal")
	})

	t.Run("rejects an out of range surah id", func(t *testing.T) {
		t.Parallel()

		doc := `[{"id":115,"name":"X","arabicName":"","meaning":"","verseCount":0,"revelationType":"","verses":[]}]`

		err := qjson.Validate([]byte(doc))

		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		err := qjson.Validate([]byte("[{"))

		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
	})
}

func TestEncoder_WithValidation(t *testing.T) {
	t.Parallel()

	t.Run("writes valid documents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, qjson.NewEncoder(qjson.WithValidation()).Encode(&buf, testSurahs()))

		assert.Contains(t, buf.String(), `"name": "Fatiha"`)
	})

	t.Run("writes nothing when a surah has no name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := qjson.NewEncoder(qjson.WithValidation()).Encode(&buf, []*qurandata.Surah{{ID: 1}})

		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
		assert.Zero(t, buf.Len())
	})
}
