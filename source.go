package qurandata

import (
	"context"
	"io"
)

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the body.
	// Non-2xx responses are returned as errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Progress reports progress while a Source fetches chapters.
type Progress struct {
	Chapter   int
	Completed int
	Total     int
}

// ProgressFunc is called as chapters are processed.
type ProgressFunc func(Progress)

// Source fetches the complete dataset from an upstream API.
// Implementations hide endpoint layout, edition selection and verse alignment.
type Source interface {
	// FetchSurahs returns all surahs ordered by ID. Any fetch or decode
	// error aborts the run. The progress function may be nil.
	FetchSurahs(ctx context.Context, progress ProgressFunc) ([]*Surah, error)
}

// Encoder renders surahs in an application-consumable format.
type Encoder interface {
	Encode(w io.Writer, surahs []*Surah) error
}

// OutputStore persists a generated artifact with atomic semantics.
// Save writes to a temporary location; Commit makes it permanent;
// Abort discards it.
type OutputStore interface {
	Save(ctx context.Context, data []byte) error

	// Commit reports whether the final artifact changed.
	Commit() (changed bool, err error)

	Abort() error
}
