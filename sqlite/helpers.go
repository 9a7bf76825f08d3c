package sqlite

import (
	"errors"
	"fmt"
	"time"

	"github.com/ncruces/go-sqlite3"
)

// timestampFormat is a fixed-width UTC layout so stored values sort
// lexicographically in time order.
const timestampFormat = "2006-01-02T15:04:05.000000000Z"

// formatTimestamp formats t in UTC using timestampFormat.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// parseTimestamp parses a value written by formatTimestamp.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTimestamp(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// paginate applies offset and limit to items if values are > 0.
func paginate[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// isConstraintError reports whether err is a SQLite constraint violation.
func isConstraintError(err error) bool {
	return errors.Is(err, sqlite3.CONSTRAINT)
}
