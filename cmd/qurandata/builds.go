package main

import (
	"fmt"
	"time"

	"github.com/imandefterim/qurandata"
)

// Run executes the builds command.
func (c *BuildsCmd) Run(deps *Dependencies) error {
	builds, err := deps.Surahs.FindBuilds(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	if len(builds) == 0 {
		fmt.Fprintln(deps.Stdout, "No builds found. Use 'qurandata sqlite' to create one.")
		return nil
	}

	for _, b := range builds {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d surahs  %d verses\n",
			b.ID, b.CreatedAt.Format(time.DateTime), b.Source, b.Surahs, b.Verses)
	}
	return nil
}
