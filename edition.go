package qurandata

// EditionVerse is one verse of an independently fetched edition
// (Arabic text, translation or recitation audio).
type EditionVerse struct {
	Chapter int
	Verse   int
	Text    string
	Audio   string
}

// IndexByChapter groups verses by chapter, preserving their order.
func IndexByChapter(verses []EditionVerse) map[int][]EditionVerse {
	m := make(map[int][]EditionVerse)
	for _, v := range verses {
		m[v.Chapter] = append(m[v.Chapter], v)
	}
	return m
}

// Mismatch reports editions that disagree on the verse number at a position.
// A zero verse number means the edition had no entry at that position.
type Mismatch struct {
	Chapter     int
	Position    int // 1-based
	Text        int
	Translation int
	Audio       int
}

// MismatchFunc is called for every misaligned position.
type MismatchFunc func(Mismatch)

// AlignEditions joins three editions of a chapter by ordinal position.
// The Arabic text edition drives the join: verse IDs and numbers come from it.
// Positions where the editions disagree on the verse number are reported as
// mismatches but still produce a verse. A nil audio edition is allowed and is
// not checked.
func AlignEditions(chapter int, text, translation, audio []EditionVerse) ([]*Verse, []Mismatch) {
	verses := make([]*Verse, 0, len(text))
	var mismatches []Mismatch

	for i, t := range text {
		v := &Verse{
			ID:         t.Verse,
			SurahID:    chapter,
			Number:     t.Verse,
			ArabicText: t.Text,
		}

		m := Mismatch{Chapter: chapter, Position: i + 1, Text: t.Verse}
		bad := false

		if i < len(translation) {
			v.Translation = translation[i].Text
			m.Translation = translation[i].Verse
		}
		if m.Translation != t.Verse {
			bad = true
		}

		if audio != nil {
			if i < len(audio) {
				v.AudioURL = audio[i].Audio
				m.Audio = audio[i].Verse
			}
			if m.Audio != t.Verse {
				bad = true
			}
		}

		if bad {
			mismatches = append(mismatches, m)
		}
		verses = append(verses, v)
	}

	return verses, mismatches
}

// MergeByNumber builds the verses of a chapter from a translation edition,
// looking up the Arabic text by verse number. Verse IDs are ordinal positions
// starting at 1. Verses without Arabic text get an empty ArabicText.
func MergeByNumber(chapter int, translation, text []EditionVerse) []*Verse {
	arabic := make(map[int]string, len(text))
	for _, t := range text {
		if _, ok := arabic[t.Verse]; !ok {
			arabic[t.Verse] = t.Text
		}
	}

	verses := make([]*Verse, 0, len(translation))
	for i, tr := range translation {
		verses = append(verses, &Verse{
			ID:          i + 1,
			SurahID:     chapter,
			Number:      tr.Verse,
			ArabicText:  arabic[tr.Verse],
			Translation: tr.Text,
		})
	}
	return verses
}
