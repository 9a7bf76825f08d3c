package main

import (
	"fmt"

	"github.com/imandefterim/qurandata"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	surahs, err := deps.Surahs.FindSurahs(deps.Ctx, qurandata.SurahFilter{Query: c.Query, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	if len(surahs) == 0 {
		fmt.Fprintf(deps.Stdout, "No surahs match %q.\n", c.Query)
		return nil
	}

	for _, s := range surahs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.DisplayName(), s.ArabicName, s.Meaning)
	}
	return nil
}
