package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output honours the level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "json", "warn")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "activity", "Chess Club")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "Chess Club", entry["activity"])
	})

	t.Run("text output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "TEXT", "debug")
		require.NoError(t, err)

		logger.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		t.Parallel()

		_, err := New(&bytes.Buffer{}, "xml", "info")
		require.Error(t, err)

		_, err = New(&bytes.Buffer{}, "json", "loud")
		require.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, lvl)
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromContext(context.Background()))

	logger := slog.Default()
	ctx := ContextWithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	same := ContextWithLogger(ctx, nil)
	assert.Equal(t, ctx, same)
}
