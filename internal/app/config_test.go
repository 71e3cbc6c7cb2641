package app

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/statgrid/internal/report"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults output format", func(t *testing.T) {
		cfg, err := NewConfig(Config{StudyPath: "s.hcl", WorkerCount: 1})
		require.NoError(t, err)
		require.Equal(t, report.FormatText, cfg.OutputFormat)
	})

	t.Run("requires study path", func(t *testing.T) {
		_, err := NewConfig(Config{WorkerCount: 1})
		require.ErrorContains(t, err, "StudyPath")
	})

	t.Run("rejects zero workers", func(t *testing.T) {
		_, err := NewConfig(Config{StudyPath: "s.hcl"})
		require.ErrorContains(t, err, "WorkerCount")
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := NewConfig(Config{StudyPath: "s.hcl", WorkerCount: 1, OutputFormat: "html"})
		require.ErrorContains(t, err, "unknown format")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"k":"v"`)
}
