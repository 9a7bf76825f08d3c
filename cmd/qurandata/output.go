package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/imandefterim/qurandata"
)

// writeOutput encodes surahs and hands the bytes to the store. Nothing is
// left behind in the store when any step fails.
func writeOutput(deps *Dependencies, surahs []*qurandata.Surah) (changed bool, err error) {
	var buf bytes.Buffer
	if err := deps.Encoder.Encode(&buf, surahs); err != nil {
		return false, fmt.Errorf("encode: %w", err)
	}
	if err := deps.Store.Save(deps.Ctx, buf.Bytes()); err != nil {
		_ = deps.Store.Abort()
		return false, fmt.Errorf("save: %w", err)
	}
	changed, err = deps.Store.Commit()
	if err != nil {
		_ = deps.Store.Abort()
		return false, fmt.Errorf("commit: %w", err)
	}
	return changed, nil
}

// printSummary reports what a generate command produced.
func printSummary(w io.Writer, path string, changed bool, surahs []*qurandata.Surah) {
	if changed {
		fmt.Fprintf(w, "\nGenerated %s\n", path)
	} else {
		fmt.Fprintf(w, "\n%s is up to date\n", path)
	}
	fmt.Fprintf(w, "   - %d Surahs\n", len(surahs))
	fmt.Fprintf(w, "   - %d Verses\n", qurandata.TotalVerses(surahs))
}

// printProgress returns a ProgressFunc that announces each surah request.
func printProgress(w io.Writer) qurandata.ProgressFunc {
	return func(p qurandata.Progress) {
		if p.Completed < p.Total {
			fmt.Fprintf(w, "Fetching Surah %d/%d...\n", p.Chapter, p.Total)
		}
	}
}

// PrintMismatch returns a MismatchFunc that warns about misaligned editions.
func PrintMismatch(w io.Writer) qurandata.MismatchFunc {
	return func(m qurandata.Mismatch) {
		fmt.Fprintf(w, "warning: mismatch in ayah numbering for surah %d at position %d (text %d, translation %d, audio %d)\n",
			m.Chapter, m.Position, m.Text, m.Translation, m.Audio)
	}
}
