// Package fs provides file-based storage for generated artifacts.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/imandefterim/qurandata"
)

// Ensure FileStore implements qurandata.OutputStore at compile time.
var _ qurandata.OutputStore = (*FileStore)(nil)

// FileStore implements qurandata.OutputStore with atomic update semantics.
// Output is saved to a temporary file next to the target, then renamed on
// Commit. A commit that would not change the target leaves it untouched.
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore writing to path.
// Data is saved to path.tmp and moved to path on Commit.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the final output path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) tempPath() string {
	return s.path + ".tmp"
}

// Save writes data to the temporary file, creating parent directories.
func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.tempPath(), data, 0644)
}

// Commit moves the temporary file over the target. When both files have
// the same content the temporary file is removed and changed is false.
func (s *FileStore) Commit() (changed bool, err error) {
	newSum, err := checksum(s.tempPath())
	if err != nil {
		return false, err
	}

	oldSum, err := checksum(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err == nil && oldSum == newSum {
		return false, os.Remove(s.tempPath())
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		return false, err
	}
	return true, nil
}

// Abort discards the temporary file.
func (s *FileStore) Abort() error {
	if err := os.Remove(s.tempPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// checksum returns the xxhash64 digest of the file at path.
func checksum(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
