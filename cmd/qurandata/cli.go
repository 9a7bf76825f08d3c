package main

import (
	"context"
	"io"
	"time"

	"github.com/imandefterim/qurandata"
	"github.com/imandefterim/qurandata/alquran"
	"github.com/imandefterim/qurandata/quranapi"
	"github.com/imandefterim/qurandata/zstd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Source  qurandata.Source
	Encoder qurandata.Encoder
	Store   qurandata.OutputStore
	Surahs  qurandata.SurahService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool          `help:"Log fetches and storage calls to stderr" env:"QURANDATA_DEBUG"`
	Timeout time.Duration `default:"30s" help:"Per-request HTTP timeout" env:"QURANDATA_TIMEOUT"`
	DB      string        `name:"db" help:"SQLite database path" env:"QURANDATA_DB"`

	Swift  SwiftCmd  `cmd:"" help:"Generate QuranData.swift from the quran-api CDN"`
	JSON   JSONCmd   `cmd:"" name:"json" help:"Fetch all surahs from alquran.cloud and write the JSON resource"`
	SQLite SQLiteCmd `cmd:"" name:"sqlite" help:"Fetch all surahs into the local SQLite database"`
	Show   ShowCmd   `cmd:"" help:"Show a surah or a single verse from the database"`
	Search SearchCmd `cmd:"" help:"Search surahs by name or meaning"`
	Builds BuildsCmd `cmd:"" help:"List previous database builds"`
}

// SwiftCmd is the "swift" subcommand.
type SwiftCmd struct {
	Output   string `short:"o" default:"QuranData.swift" help:"Output file" env:"QURANDATA_SWIFT_OUTPUT"`
	BaseURL  string `name:"base-url" help:"quran-api base URL" env:"QURANDATA_QURANAPI_URL"`
	Insecure bool   `help:"Skip TLS certificate verification"`
}

// JSONCmd is the "json" subcommand.
type JSONCmd struct {
	Output   string        `short:"o" default:"quran_data_complete.json" help:"Output file" env:"QURANDATA_JSON_OUTPUT"`
	Names    string        `help:"Previous JSON output whose surah names are preserved" type:"path" env:"QURANDATA_NAMES"`
	Delay    time.Duration `default:"500ms" help:"Pause between surah requests"`
	Labels   string        `enum:"place,adjective" default:"place" help:"Revelation labels (place: Mekke/Medine, adjective: Mekki/Medeni)"`
	Compress bool          `short:"z" help:"Compress the output with zstd"`
	BaseURL  string        `name:"base-url" help:"alquran.cloud base URL" env:"QURANDATA_ALQURAN_URL"`
}

// SQLiteCmd is the "sqlite" subcommand.
type SQLiteCmd struct {
	Source string        `enum:"quranapi,alquran" default:"quranapi" help:"Upstream API (quranapi, alquran)"`
	Delay  time.Duration `default:"500ms" help:"Pause between alquran.cloud requests"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Surah int `arg:"" help:"Surah number (1-114)"`
	Verse int `arg:"" optional:"" help:"Verse number"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to match against names and meanings"`
	Limit int    `short:"n" help:"Maximum number of results"`
}

// BuildsCmd is the "builds" subcommand.
type BuildsCmd struct{}

// OutputPath returns the file the json command writes to.
func (c *JSONCmd) OutputPath() string {
	if c.Compress && !zstd.IsCompressed(c.Output) {
		return c.Output + zstd.Extension
	}
	return c.Output
}

// RevelationLabels returns the label set selected by --labels.
func (c *JSONCmd) RevelationLabels() qurandata.RevelationLabels {
	if c.Labels == "adjective" {
		return qurandata.AdjectiveLabels
	}
	return qurandata.PlaceLabels
}

func (c *SwiftCmd) baseURL() string {
	if c.BaseURL == "" {
		return quranapi.DefaultBaseURL
	}
	return c.BaseURL
}

func (c *JSONCmd) baseURL() string {
	if c.BaseURL == "" {
		return alquran.DefaultBaseURL
	}
	return c.BaseURL
}
