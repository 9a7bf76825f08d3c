package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/imandefterim/qurandata/cmd/qurandata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses flag values", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader("timeout: 5s\ndebug: true\n"))
		require.NoError(t, err)
	})

	t.Run("accepts an empty file", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader(""))
		require.NoError(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAML(strings.NewReader("timeout: [5s"))
		require.Error(t, err)
	})
}

func TestMain_Run_ReadsConfigFiles(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".json", ".yaml"} {
		ext := ext
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			dbPath := filepath.Join(dir, "from-config.db")

			var config string
			if ext == ".json" {
				config = `{"db": "` + dbPath + `"}`
			} else {
				config = "db: " + dbPath + "\n"
			}
			configPath := filepath.Join(dir, "qurandata"+ext)
			require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

			m := main.NewMain()
			m.DBPath = filepath.Join(dir, "default.db")
			m.ConfigPaths = []string{configPath}

			stdout := &bytes.Buffer{}
			err := m.Run(context.Background(), []string{"builds"}, stdout, &bytes.Buffer{})
			require.NoError(t, err)

			assert.Contains(t, stdout.String(), "No builds found")
			assert.FileExists(t, dbPath)
			assert.NoFileExists(t, m.DBPath)
		})
	}
}
