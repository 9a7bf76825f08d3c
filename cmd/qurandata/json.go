package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imandefterim/qurandata"
	"github.com/imandefterim/qurandata/json"
	"github.com/imandefterim/qurandata/zstd"
)

// Run executes the json command.
func (c *JSONCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Starting data fetch for %d Surahs...\n", qurandata.SurahCount)

	surahs, err := deps.Source.FetchSurahs(deps.Ctx, printProgress(deps.Stdout))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Failed to fetch all data. Aborting.")
		return err
	}
	if err := qurandata.ValidateSurahs(surahs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Successfully processed %d Surahs.\n", len(surahs))

	changed, err := writeOutput(deps, surahs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qurandata.ErrorMessage(err))
		return err
	}

	printSummary(deps.Stdout, c.OutputPath(), changed, surahs)
	return nil
}

// LoadNames reads the surah names of a previous JSON output at path.
// Compressed files are decompressed transparently. A missing or unreadable
// file is reported on w and yields no names, so the API names are used.
func LoadNames(path string, w io.Writer) map[int]string {
	if path == "" {
		return nil
	}

	fmt.Fprintln(w, "Loading existing Surah names...")
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(w, "Warning: Existing file not found at %s. Using API names.\n", path)
		return nil
	} else if err != nil {
		fmt.Fprintf(w, "Error reading existing data: %v\n", err)
		return nil
	}
	defer f.Close()

	var r io.Reader = f
	if zstd.IsCompressed(path) {
		zr, err := zstd.NewReader(f)
		if err != nil {
			fmt.Fprintf(w, "Error reading existing data: %v\n", err)
			return nil
		}
		defer zr.Close()
		r = zr
	}

	names, err := json.ReadNames(r)
	if err != nil {
		fmt.Fprintf(w, "Error reading existing data: %s\n", qurandata.ErrorMessage(err))
		return nil
	}
	return names
}
