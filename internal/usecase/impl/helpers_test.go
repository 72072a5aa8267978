package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bloodlink/internal/domain/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireAppError asserts err carries target's business code and, when msg is set, that message.
func requireAppError(t *testing.T, err error, target *domainerrors.BaseError, msg string) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, target)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, target.HTTPCode(), appErr.HTTPCode())
	if msg != "" {
		assert.Equal(t, msg, appErr.Message())
	}
}
