package main

import (
	"fmt"

	"github.com/imandefterim/qurandata"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.Verse > 0 {
		v, err := deps.Surahs.FindVerse(deps.Ctx, c.Surah, c.Verse)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\n%s\n%s\n", v.Reference(), v.ArabicText, v.Translation)
		return nil
	}

	s, err := deps.Surahs.FindSurahByID(deps.Ctx, c.Surah)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s\n", s.DisplayName(), s.ArabicName)
	if s.Meaning != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", s.Meaning)
	}
	fmt.Fprintf(deps.Stdout, "%s, %d verses\n\n", qurandata.PlaceLabels.Label(s.Revelation), s.VerseCount)
	for _, v := range s.Verses {
		fmt.Fprintf(deps.Stdout, "%3d. %s\n     %s\n", v.Number, v.ArabicText, v.Translation)
	}
	return nil
}
