package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init configures the global slog logger writing to w. JSON if
// RAWMATCH_JSON_LOG=1/true/json else text. Level comes from
// RAWMATCH_LOG_LEVEL unless verbose forces debug.
func Init(w io.Writer, verbose bool) *slog.Logger {
	json := jsonFromEnv()
	level, known := levelFromEnv()
	opts := &slog.HandlerOptions{AddSource: false, Level: level}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("cmd", "rawmatch")
	slog.SetDefault(logger)
	if !known {
		logger.Warn("unknown log level, using warn", "RAWMATCH_LOG_LEVEL", os.Getenv("RAWMATCH_LOG_LEVEL"))
	}
	logger.Debug("logging initialized", "json", json)
	return logger
}

func jsonFromEnv() bool {
	switch strings.ToLower(os.Getenv("RAWMATCH_JSON_LOG")) {
	case "1", "true", "json":
		return true
	}
	return false
}

// levelFromEnv reports false for a value it does not recognise. Unset means
// warn so the CLI stays quiet.
func levelFromEnv() (slog.Level, bool) {
	switch strings.ToLower(os.Getenv("RAWMATCH_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning", "":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}
