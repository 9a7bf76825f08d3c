package mock

import (
	"context"

	"github.com/imandefterim/qurandata"
)

var _ qurandata.OutputStore = (*OutputStore)(nil)

// OutputStore is a mock implementation of qurandata.OutputStore.
type OutputStore struct {
	SaveFn   func(ctx context.Context, data []byte) error
	CommitFn func() (bool, error)
	AbortFn  func() error
}

func (s *OutputStore) Save(ctx context.Context, data []byte) error {
	return s.SaveFn(ctx, data)
}

func (s *OutputStore) Commit() (bool, error) {
	return s.CommitFn()
}

func (s *OutputStore) Abort() error {
	return s.AbortFn()
}
