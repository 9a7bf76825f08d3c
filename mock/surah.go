package mock

import (
	"context"

	"github.com/imandefterim/qurandata"
)

var _ qurandata.SurahService = (*SurahService)(nil)

// SurahService is a mock implementation of qurandata.SurahService.
type SurahService struct {
	ReplaceSurahsFn func(ctx context.Context, source string, surahs []*qurandata.Surah) (*qurandata.Build, error)
	FindSurahByIDFn func(ctx context.Context, id int) (*qurandata.Surah, error)
	FindSurahsFn    func(ctx context.Context, filter qurandata.SurahFilter) ([]*qurandata.Surah, error)
	FindVerseFn     func(ctx context.Context, surahID, number int) (*qurandata.Verse, error)
	FindBuildsFn    func(ctx context.Context) ([]*qurandata.Build, error)
}

func (s *SurahService) ReplaceSurahs(ctx context.Context, source string, surahs []*qurandata.Surah) (*qurandata.Build, error) {
	return s.ReplaceSurahsFn(ctx, source, surahs)
}

func (s *SurahService) FindSurahByID(ctx context.Context, id int) (*qurandata.Surah, error) {
	return s.FindSurahByIDFn(ctx, id)
}

func (s *SurahService) FindSurahs(ctx context.Context, filter qurandata.SurahFilter) ([]*qurandata.Surah, error) {
	return s.FindSurahsFn(ctx, filter)
}

func (s *SurahService) FindVerse(ctx context.Context, surahID, number int) (*qurandata.Verse, error) {
	return s.FindVerseFn(ctx, surahID, number)
}

func (s *SurahService) FindBuilds(ctx context.Context) ([]*qurandata.Build, error) {
	return s.FindBuildsFn(ctx)
}
