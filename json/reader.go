package json

import (
	"encoding/json"
	"io"

	"github.com/imandefterim/qurandata"
)

// ReadSurahs decodes a JSON array previously written by Encoder.
// Revelation types are parsed from either label set.
func ReadSurahs(r io.Reader) ([]*qurandata.Surah, error) {
	var in []surah
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "decode surahs: %s", err)
	}

	surahs := make([]*qurandata.Surah, 0, len(in))
	for _, s := range in {
		surahs = append(surahs, &qurandata.Surah{
			ID:         s.ID,
			Name:       s.Name,
			ArabicName: s.ArabicName,
			Meaning:    s.Meaning,
			VerseCount: s.VerseCount,
			Revelation: parseLabel(s.RevelationType),
			Verses:     s.Verses,
		})
	}
	return surahs, nil
}

// ReadNames decodes a JSON array of surahs and returns their names keyed by ID.
// Only the id and name fields are required.
func ReadNames(r io.Reader) (map[int]string, error) {
	var in []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, qurandata.Errorf(qurandata.EINVALID, "decode surah names: %s", err)
	}

	names := make(map[int]string, len(in))
	for _, s := range in {
		names[s.ID] = s.Name
	}
	return names, nil
}

func parseLabel(label string) qurandata.Revelation {
	for _, l := range []qurandata.RevelationLabels{qurandata.PlaceLabels, qurandata.AdjectiveLabels} {
		switch label {
		case l.Meccan:
			return qurandata.Meccan
		case l.Medinan:
			return qurandata.Medinan
		}
	}
	r, _ := qurandata.ParseRevelation(label)
	return r
}
