package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitText(t *testing.T) {
	t.Setenv("RAWMATCH_JSON_LOG", "")
	t.Setenv("RAWMATCH_LOG_LEVEL", "info")

	var buf bytes.Buffer
	logger := Init(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "pos", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "pos=3")
	require.Contains(t, out, "cmd=rawmatch")
}

func TestInitJSONVerbose(t *testing.T) {
	t.Setenv("RAWMATCH_JSON_LOG", "true")
	t.Setenv("RAWMATCH_LOG_LEVEL", "error")

	var buf bytes.Buffer
	logger := Init(&buf, true)
	buf.Reset()
	logger.Debug("search", "needle_len", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "search", rec["msg"])
	require.Equal(t, float64(2), rec["needle_len"])
	require.Equal(t, slog.LevelDebug.String(), rec["level"])
}

func TestLevelFromEnv(t *testing.T) {
	for _, tt := range []struct {
		value string
		level slog.Level
		known bool
	}{
		{"", slog.LevelWarn, true},
		{"warn", slog.LevelWarn, true},
		{"WARNING", slog.LevelWarn, true},
		{"debug", slog.LevelDebug, true},
		{"Info", slog.LevelInfo, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelWarn, false},
	} {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("RAWMATCH_LOG_LEVEL", tt.value)
			level, known := levelFromEnv()
			require.Equal(t, tt.level, level)
			require.Equal(t, tt.known, known)
		})
	}
}

func TestInitReportsUnknownLevel(t *testing.T) {
	t.Setenv("RAWMATCH_JSON_LOG", "")
	t.Setenv("RAWMATCH_LOG_LEVEL", "verbose")

	var buf bytes.Buffer
	Init(&buf, false)

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "unknown log level")
	require.Contains(t, out, "RAWMATCH_LOG_LEVEL=verbose")
}
