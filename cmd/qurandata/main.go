package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/imandefterim/qurandata"
	"github.com/imandefterim/qurandata/alquran"
	"github.com/imandefterim/qurandata/fs"
	qurhttp "github.com/imandefterim/qurandata/http"
	"github.com/imandefterim/qurandata/json"
	"github.com/imandefterim/qurandata/quranapi"
	qslog "github.com/imandefterim/qurandata/slog"
	"github.com/imandefterim/qurandata/sqlite"
	"github.com/imandefterim/qurandata/swift"
	"github.com/imandefterim/qurandata/zstd"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// JSON or YAML configuration files consulted for flag defaults.
	ConfigPaths []string

	// SQLite database used by the sqlite, show, search and builds commands.
	DB *sqlite.DB

	// Fetcher replaces the HTTP fetcher for end-to-end testing.
	Fetcher qurandata.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{"~/.qurandata.json", "~/.qurandata.yaml", ".qurandata.json", ".qurandata.yaml"},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	opts := []kong.Option{
		kong.Name("qurandata"),
		kong.Description("Prepare Quran surah data for the iOS app and widget."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	}
	parser, err := kong.New(cli, append(opts, configOptions(m.ConfigPaths)...)...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'qurandata --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	switch cmd {
	case "swift":
		fetcher := m.fetcher(cli, cli.Swift.Insecure, 0, logger)
		deps.Source = m.source(quranapi.NewSource(fetcher, quranapi.WithBaseURL(cli.Swift.baseURL())), "quranapi", logger)
		deps.Encoder = swift.NewEncoder()
		deps.Store = fs.NewFileStore(cli.Swift.Output)

	case "json":
		fetcher := m.fetcher(cli, false, cli.JSON.Delay, logger)
		names := LoadNames(cli.JSON.Names, stdout)
		deps.Source = m.source(alquran.NewSource(fetcher,
			alquran.WithBaseURL(cli.JSON.baseURL()),
			alquran.WithNames(names),
			alquran.WithMismatchFunc(PrintMismatch(stderr)),
		), "alquran", logger)
		var enc qurandata.Encoder = json.NewEncoder(json.WithLabels(cli.JSON.RevelationLabels()), json.WithValidation())
		if cli.JSON.Compress {
			enc = zstd.NewEncoder(enc)
		}
		deps.Encoder = enc
		deps.Store = fs.NewFileStore(cli.JSON.OutputPath())

	case "sqlite", "show", "search", "builds":
		dbPath := m.DBPath
		if cli.DB != "" {
			dbPath = cli.DB
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set QURANDATA_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		var surahs qurandata.SurahService = sqlite.NewSurahService(m.DB)
		if logger != nil {
			surahs = qslog.NewLoggingSurahService(surahs, logger)
		}
		deps.Surahs = surahs

		if cmd == "sqlite" {
			if cli.SQLite.Source == "alquran" {
				fetcher := m.fetcher(cli, false, cli.SQLite.Delay, logger)
				deps.Source = m.source(alquran.NewSource(fetcher,
					alquran.WithMismatchFunc(PrintMismatch(stderr)),
				), "alquran", logger)
			} else {
				fetcher := m.fetcher(cli, false, 0, logger)
				deps.Source = m.source(quranapi.NewSource(fetcher), "quranapi", logger)
			}
		}
	}

	return kongCtx.Run(deps)
}

// fetcher returns the HTTP fetcher for a command, wrapped for logging when
// debug output is enabled.
func (m *Main) fetcher(cli *CLI, insecure bool, pacing time.Duration, logger *slog.Logger) qurandata.Fetcher {
	f := m.Fetcher
	if f == nil {
		f = qurhttp.NewFetcher(
			qurhttp.WithTimeout(cli.Timeout),
			qurhttp.WithInsecureTLS(insecure),
			qurhttp.WithPacing(pacing),
		)
	}
	if logger != nil {
		f = qslog.NewLoggingFetcher(f, logger)
	}
	return f
}

func (m *Main) source(src qurandata.Source, name string, logger *slog.Logger) qurandata.Source {
	if logger == nil {
		return src
	}
	return qslog.NewLoggingSource(src, name, logger)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "qurandata.db"
	}
	dir := filepath.Join(home, ".qurandata")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "quran.db")
}
