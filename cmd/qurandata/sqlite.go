package main

import (
	"fmt"

	"github.com/imandefterim/qurandata"
)

// Run executes the sqlite command.
func (c *SQLiteCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching %d Surahs from %s...\n", qurandata.SurahCount, c.Source)

	surahs, err := deps.Source.FetchSurahs(deps.Ctx, printProgress(deps.Stdout))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	build, err := deps.Surahs.ReplaceSurahs(deps.Ctx, c.Source, surahs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored %d Surahs (%d Verses) as build %s\n", build.Surahs, build.Verses, build.ID)
	return nil
}
