package qurandata_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/imandefterim/qurandata"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := qurandata.Errorf(qurandata.ENOTFOUND, "surah %d not found", 115)

	assert.Equal(t, qurandata.ENOTFOUND, qurandata.ErrorCode(err))
	assert.Equal(t, "surah 115 not found", qurandata.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch surah 2: %w", qurandata.Errorf(qurandata.EINVALID, "bad edition"))

	assert.Equal(t, qurandata.EINVALID, qurandata.ErrorCode(err))
	assert.Equal(t, "bad edition", qurandata.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, qurandata.EINTERNAL, qurandata.ErrorCode(err))
	assert.Equal(t, "connection refused", qurandata.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qurandata.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qurandata.ErrorMessage(nil))
}
