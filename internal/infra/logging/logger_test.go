package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)

	got := formatLog(ts, slog.LevelWarn, "store", "saved 3 tasks")

	assert.Equal(t, "[2025-12-30 09:32:51] [WARN] [store] saved 3 tasks\n", got)
}

func TestLogger_WritesAboveLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")
	logger := New(path, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.Debug("task", "hidden")
	logger.Info("task", "added #0")
	logger.Error("store", "save failed")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2025-01-02 03:04:05] [INFO] [task] added #0", lines[0])
	assert.Equal(t, "[2025-01-02 03:04:05] [ERROR] [store] save failed", lines[1])
}

func TestLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")

	first := New(path, slog.LevelDebug)
	first.Info("task", "one")
	require.NoError(t, first.Close())

	second := New(path, slog.LevelDebug)
	second.Info("task", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	logger.Info("task", "nothing happens")

	assert.NoError(t, logger.Close())
}
