package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var b bytes.Buffer
		l, err := logger.New(&b, "info", "text")
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("shown", slog.Int("n", 1))
		assert.NotContains(t, b.String(), "hidden")
		assert.Contains(t, b.String(), "msg=shown n=1")
	})

	t.Run("json", func(t *testing.T) {
		var b bytes.Buffer
		l, err := logger.New(&b, "DEBUG", "json")
		require.NoError(t, err)

		l.Debug("shown")
		var m map[string]any
		require.NoError(t, json.Unmarshal(b.Bytes(), &m))
		assert.Equal(t, "shown", m["msg"])
		assert.Equal(t, "DEBUG", m["level"])
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := logger.New(&bytes.Buffer{}, "loud", "text")
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := logger.New(&bytes.Buffer{}, "info", "xml")
		assert.ErrorIs(t, err, logger.ErrUnknownFormat)
	})
}

func TestCauseAttr(t *testing.T) {
	var b bytes.Buffer
	l, err := logger.New(&b, "info", "json")
	require.NoError(t, err)

	l.Error("failed", slog.Any("err", cause.New(codes.NotFound, "words/file_not_found", "The data file does not exist")))

	assert.Contains(t, b.String(), "words/file_not_found")
}
