package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imandefterim/qurandata"
)

// Compile-time interface verification.
var _ qurandata.SurahService = (*SurahService)(nil)

// SurahService implements qurandata.SurahService using SQLite.
type SurahService struct {
	db *DB
}

// NewSurahService creates a new SurahService.
func NewSurahService(db *DB) *SurahService {
	return &SurahService{db: db}
}

// ReplaceSurahs deletes all stored surahs and inserts the given ones in a
// single transaction, then records the import.
func (s *SurahService) ReplaceSurahs(ctx context.Context, source string, surahs []*qurandata.Surah) (*qurandata.Build, error) {
	for _, surah := range surahs {
		if err := surah.Validate(); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM verses"); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM surahs"); err != nil {
		return nil, err
	}

	surahStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO surahs (id, name, arabic_name, meaning, verse_count, revelation)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer surahStmt.Close()

	verseStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO verses (surah_id, number, position, arabic_text, translation, audio_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer verseStmt.Close()

	var verseCount int
	for _, surah := range surahs {
		if _, err := surahStmt.ExecContext(ctx, surah.ID, surah.Name, surah.ArabicName, surah.Meaning,
			surah.VerseCount, int(surah.Revelation)); err != nil {
			if isConstraintError(err) {
				return nil, qurandata.Errorf(qurandata.ECONFLICT, "duplicate surah %d", surah.ID)
			}
			return nil, err
		}
		for _, v := range surah.Verses {
			if _, err := verseStmt.ExecContext(ctx, surah.ID, v.Number, v.ID, v.ArabicText,
				v.Translation, v.AudioURL); err != nil {
				if isConstraintError(err) {
					return nil, qurandata.Errorf(qurandata.ECONFLICT, "duplicate verse %d:%d", surah.ID, v.Number)
				}
				return nil, err
			}
			verseCount++
		}
	}

	build := &qurandata.Build{
		ID:        uuid.New().String(),
		Source:    source,
		Surahs:    len(surahs),
		Verses:    verseCount,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, source, surahs, verses, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, build.ID, build.Source, build.Surahs, build.Verses, formatTimestamp(build.CreatedAt)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return build, nil
}

// FindSurahByID retrieves a surah with its verses ordered by position.
func (s *SurahService) FindSurahByID(ctx context.Context, id int) (*qurandata.Surah, error) {
	var surah qurandata.Surah
	var revelation int

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, arabic_name, meaning, verse_count, revelation
		FROM surahs
		WHERE id = ?
	`, id).Scan(&surah.ID, &surah.Name, &surah.ArabicName, &surah.Meaning, &surah.VerseCount, &revelation)
	if err == sql.ErrNoRows {
		return nil, qurandata.Errorf(qurandata.ENOTFOUND, "surah %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	surah.Revelation = qurandata.Revelation(revelation)

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, number, arabic_text, translation, audio_url
		FROM verses
		WHERE surah_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		v := &qurandata.Verse{SurahID: id}
		if err := rows.Scan(&v.ID, &v.Number, &v.ArabicText, &v.Translation, &v.AudioURL); err != nil {
			return nil, err
		}
		surah.Verses = append(surah.Verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &surah, nil
}

// FindSurahs retrieves surahs ordered by ID. Queries are matched in Go with
// qurandata.SearchSurahs so casing follows Turkish rules; pagination applies
// after matching.
func (s *SurahService) FindSurahs(ctx context.Context, filter qurandata.SurahFilter) ([]*qurandata.Surah, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, arabic_name, meaning, verse_count, revelation
		FROM surahs
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surahs []*qurandata.Surah
	for rows.Next() {
		var surah qurandata.Surah
		var revelation int
		if err := rows.Scan(&surah.ID, &surah.Name, &surah.ArabicName, &surah.Meaning,
			&surah.VerseCount, &revelation); err != nil {
			return nil, err
		}
		surah.Revelation = qurandata.Revelation(revelation)
		surahs = append(surahs, &surah)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return paginate(qurandata.SearchSurahs(surahs, strings.TrimSpace(filter.Query)), filter.Offset, filter.Limit), nil
}

// FindVerse retrieves a single verse by surah ID and verse number.
func (s *SurahService) FindVerse(ctx context.Context, surahID, number int) (*qurandata.Verse, error) {
	v := &qurandata.Verse{SurahID: surahID, Number: number}

	err := s.db.QueryRowContext(ctx, `
		SELECT position, arabic_text, translation, audio_url
		FROM verses
		WHERE surah_id = ? AND number = ?
	`, surahID, number).Scan(&v.ID, &v.ArabicText, &v.Translation, &v.AudioURL)
	if err == sql.ErrNoRows {
		return nil, qurandata.Errorf(qurandata.ENOTFOUND, "verse %d:%d not found", surahID, number)
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}

// FindBuilds returns recorded imports, newest first.
func (s *SurahService) FindBuilds(ctx context.Context) ([]*qurandata.Build, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, surahs, verses, created_at
		FROM builds
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*qurandata.Build
	for rows.Next() {
		var b qurandata.Build
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Source, &b.Surahs, &b.Verses, &createdAt); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}
		builds = append(builds, &b)
	}

	return builds, rows.Err()
}
