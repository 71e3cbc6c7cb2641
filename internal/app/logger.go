package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger on outW. Unknown levels fall back to info;
// any format other than "json" selects the text handler. The global logger is
// left untouched so parallel tests keep their own output.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
