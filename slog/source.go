package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/imandefterim/qurandata"
)

// Ensure LoggingSource implements qurandata.Source.
var _ qurandata.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with debug logging.
type LoggingSource struct {
	next   qurandata.Source
	name   string
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. The name identifies the
// upstream API in log lines.
func NewLoggingSource(next qurandata.Source, name string, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, name: name, logger: logger}
}

// FetchSurahs delegates to the wrapped source and logs the totals.
func (s *LoggingSource) FetchSurahs(ctx context.Context, progress qurandata.ProgressFunc) (surahs []*qurandata.Surah, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch surahs",
			"source", s.name,
			"surahs", len(surahs),
			"verses", qurandata.TotalVerses(surahs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchSurahs(ctx, progress)
}
