package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/imandefterim/qurandata"
	"github.com/imandefterim/qurandata/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// testSurahs returns all surahs with Turkish names and two verses each.
func testSurahs() []*qurandata.Surah {
	surahs := make([]*qurandata.Surah, 0, qurandata.SurahCount)
	for id := 1; id <= qurandata.SurahCount; id++ {
		name, meaning := qurandata.SurahNameOrDefault(id)
		rev := qurandata.Meccan
		if id%2 == 0 {
			rev = qurandata.Medinan
		}
		s := &qurandata.Surah{
			ID:         id,
			Name:       name,
			ArabicName: fmt.Sprintf("سورة %d", id),
			Meaning:    meaning,
			VerseCount: 2,
			Revelation: rev,
		}
		for n := 1; n <= 2; n++ {
			s.Verses = append(s.Verses, &qurandata.Verse{
				ID:          n,
				SurahID:     id,
				Number:      n,
				ArabicText:  fmt.Sprintf("ar %d:%d", id, n),
				Translation: fmt.Sprintf("tr %d:%d", id, n),
				AudioURL:    fmt.Sprintf("https://cdn/%d/%d.mp3", id, n),
			})
		}
		surahs = append(surahs, s)
	}
	return surahs
}

func TestSurahService_ReplaceSurahs(t *testing.T) {
	t.Parallel()

	t.Run("stores surahs and records build", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSurahService(setupTestDB(t))
		ctx := context.Background()

		build, err := svc.ReplaceSurahs(ctx, "alquran", testSurahs())
		require.NoError(t, err)

		assert.NotEmpty(t, build.ID, "ID should be generated")
		assert.Equal(t, "alquran", build.Source)
		assert.Equal(t, qurandata.SurahCount, build.Surahs)
		assert.Equal(t, 2*qurandata.SurahCount, build.Verses)
		assert.False(t, build.CreatedAt.IsZero())

		builds, err := svc.FindBuilds(ctx)
		require.NoError(t, err)
		require.Len(t, builds, 1)
		assert.Equal(t, build.ID, builds[0].ID)
		assert.True(t, build.CreatedAt.Equal(builds[0].CreatedAt))
	})

	t.Run("replaces previous data", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSurahService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.ReplaceSurahs(ctx, "quranapi", testSurahs())
		require.NoError(t, err)

		updated := testSurahs()
		updated[0].Verses = updated[0].Verses[:1]
		updated[0].Verses[0].Translation = "Rahmân ve Rahîm"
		_, err = svc.ReplaceSurahs(ctx, "alquran", updated)
		require.NoError(t, err)

		fatiha, err := svc.FindSurahByID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, fatiha.Verses, 1)
		assert.Equal(t, "Rahmân ve Rahîm", fatiha.Verses[0].Translation)

		builds, err := svc.FindBuilds(ctx)
		require.NoError(t, err)
		require.Len(t, builds, 2)
		assert.Equal(t, "alquran", builds[0].Source, "newest build first")
	})

	t.Run("rejects invalid surah without touching data", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSurahService(setupTestDB(t))
		ctx := context.Background()
		_, err := svc.ReplaceSurahs(ctx, "alquran", testSurahs())
		require.NoError(t, err)

		bad := testSurahs()
		bad[5].Name = ""
		_, err = svc.ReplaceSurahs(ctx, "alquran", bad)
		require.Error(t, err)
		assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))

		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{})
		require.NoError(t, err)
		assert.Len(t, surahs, qurandata.SurahCount)
	})

	t.Run("rolls back on duplicate verse", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSurahService(setupTestDB(t))
		ctx := context.Background()

		dup := testSurahs()
		dup[3].Verses[1].Number = 1
		_, err := svc.ReplaceSurahs(ctx, "alquran", dup)
		require.Error(t, err)
		assert.Equal(t, qurandata.ECONFLICT, qurandata.ErrorCode(err))

		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{})
		require.NoError(t, err)
		assert.Empty(t, surahs)
		builds, err := svc.FindBuilds(ctx)
		require.NoError(t, err)
		assert.Empty(t, builds)
	})
}

func TestSurahService_FindSurahByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSurahService(setupTestDB(t))
	ctx := context.Background()
	_, err := svc.ReplaceSurahs(ctx, "alquran", testSurahs())
	require.NoError(t, err)

	t.Run("returns surah with verses", func(t *testing.T) {
		s, err := svc.FindSurahByID(ctx, 2)
		require.NoError(t, err)

		assert.Equal(t, "Bakara", s.Name)
		assert.Equal(t, "İnek", s.Meaning)
		assert.Equal(t, qurandata.Medinan, s.Revelation)
		assert.Equal(t, 2, s.VerseCount)
		require.Len(t, s.Verses, 2)
		assert.Equal(t, &qurandata.Verse{
			ID:          2,
			SurahID:     2,
			Number:      2,
			ArabicText:  "ar 2:2",
			Translation: "tr 2:2",
			AudioURL:    "https://cdn/2/2.mp3",
		}, s.Verses[1])
	})

	t.Run("returns ENOTFOUND for unknown surah", func(t *testing.T) {
		_, err := svc.FindSurahByID(ctx, 115)
		require.Error(t, err)
		assert.Equal(t, qurandata.ENOTFOUND, qurandata.ErrorCode(err))
	})
}

func TestSurahService_FindSurahs(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSurahService(setupTestDB(t))
	ctx := context.Background()
	_, err := svc.ReplaceSurahs(ctx, "alquran", testSurahs())
	require.NoError(t, err)

	t.Run("returns all surahs ordered by id without verses", func(t *testing.T) {
		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{})
		require.NoError(t, err)

		require.Len(t, surahs, qurandata.SurahCount)
		assert.Equal(t, 1, surahs[0].ID)
		assert.Equal(t, 114, surahs[113].ID)
		assert.Nil(t, surahs[0].Verses)
	})

	t.Run("filters by query", func(t *testing.T) {
		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{Query: " kehf "})
		require.NoError(t, err)

		require.Len(t, surahs, 1)
		assert.Equal(t, 18, surahs[0].ID)
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{Offset: 10, Limit: 5})
		require.NoError(t, err)

		require.Len(t, surahs, 5)
		assert.Equal(t, 11, surahs[0].ID)
	})

	t.Run("returns nothing past the end", func(t *testing.T) {
		surahs, err := svc.FindSurahs(ctx, qurandata.SurahFilter{Offset: 200})
		require.NoError(t, err)
		assert.Empty(t, surahs)
	})
}

func TestSurahService_FindVerse(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSurahService(setupTestDB(t))
	ctx := context.Background()
	_, err := svc.ReplaceSurahs(ctx, "alquran", testSurahs())
	require.NoError(t, err)

	v, err := svc.FindVerse(ctx, 36, 1)
	require.NoError(t, err)
	assert.Equal(t, "36:1", v.Reference())
	assert.Equal(t, "tr 36:1", v.Translation)

	_, err = svc.FindVerse(ctx, 36, 99)
	require.Error(t, err)
	assert.Equal(t, qurandata.ENOTFOUND, qurandata.ErrorCode(err))
}
