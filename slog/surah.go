package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/imandefterim/qurandata"
)

// Ensure LoggingSurahService implements qurandata.SurahService.
var _ qurandata.SurahService = (*LoggingSurahService)(nil)

// LoggingSurahService wraps a SurahService with debug logging.
type LoggingSurahService struct {
	next   qurandata.SurahService
	logger *slog.Logger
}

// NewLoggingSurahService creates a new LoggingSurahService.
func NewLoggingSurahService(next qurandata.SurahService, logger *slog.Logger) *LoggingSurahService {
	return &LoggingSurahService{next: next, logger: logger}
}

// ReplaceSurahs delegates to the wrapped service and logs the build.
func (s *LoggingSurahService) ReplaceSurahs(ctx context.Context, source string, surahs []*qurandata.Surah) (build *qurandata.Build, err error) {
	defer func(begin time.Time) {
		var id string
		if build != nil {
			id = build.ID
		}
		s.logger.Info("replace surahs",
			"source", source,
			"surahs", len(surahs),
			"build", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceSurahs(ctx, source, surahs)
}

// FindSurahByID delegates to the wrapped service.
func (s *LoggingSurahService) FindSurahByID(ctx context.Context, id int) (surah *qurandata.Surah, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find surah", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindSurahByID(ctx, id)
}

// FindSurahs delegates to the wrapped service and logs the match count.
func (s *LoggingSurahService) FindSurahs(ctx context.Context, filter qurandata.SurahFilter) (surahs []*qurandata.Surah, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find surahs",
			"query", filter.Query,
			"count", len(surahs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSurahs(ctx, filter)
}

// FindVerse delegates to the wrapped service.
func (s *LoggingSurahService) FindVerse(ctx context.Context, surahID, number int) (verse *qurandata.Verse, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find verse", "surah", surahID, "verse", number, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindVerse(ctx, surahID, number)
}

// FindBuilds delegates to the wrapped service.
func (s *LoggingSurahService) FindBuilds(ctx context.Context) ([]*qurandata.Build, error) {
	return s.next.FindBuilds(ctx)
}
