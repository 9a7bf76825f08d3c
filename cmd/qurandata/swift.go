package main

import (
	"fmt"

	"github.com/imandefterim/qurandata"
)

// Run executes the swift command.
func (c *SwiftCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Fetching Quran data from API...")

	surahs, err := deps.Source.FetchSurahs(deps.Ctx, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}
	if err := qurandata.ValidateSurahs(surahs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	changed, err := writeOutput(deps, surahs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	printSummary(deps.Stdout, c.Output, changed, surahs)
	fmt.Fprintln(deps.Stdout, "   - Arabic text + Elmalılı Hamdi Yazır Turkish translation")
	return nil
}
