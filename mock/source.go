package mock

import (
	"context"

	"github.com/imandefterim/qurandata"
)

var _ qurandata.Source = (*Source)(nil)

// Source is a mock implementation of qurandata.Source.
type Source struct {
	FetchSurahsFn func(ctx context.Context, progress qurandata.ProgressFunc) ([]*qurandata.Surah, error)
}

func (s *Source) FetchSurahs(ctx context.Context, progress qurandata.ProgressFunc) ([]*qurandata.Surah, error) {
	return s.FetchSurahsFn(ctx, progress)
}
