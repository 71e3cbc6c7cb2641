package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/statgrid/internal/app"
	"github.com/specialistvlad/statgrid/internal/report"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		errCode    int
	}{
		{
			name: "positional path with defaults",
			args: []string{"studies/"},
			want: &app.Config{StudyPath: "studies/", OutputFormat: report.FormatText, LogFormat: "text", LogLevel: "info", WorkerCount: 1},
		},
		{
			name: "long flag wins over positional",
			args: []string{"-study", "a.hcl", "-name", "sweep", "-format", "CSV", "-workers", "8", "-log-format", "json", "-log-level", "debug", "b.hcl"},
			want: &app.Config{StudyPath: "a.hcl", StudyName: "sweep", OutputFormat: report.FormatCSV, LogFormat: "json", LogLevel: "debug", WorkerCount: 8},
		},
		{
			name: "shorthand flag",
			args: []string{"-s", "x.yaml"},
			want: &app.Config{StudyPath: "x.yaml", OutputFormat: report.FormatText, LogFormat: "text", LogLevel: "info", WorkerCount: 1},
		},
		{
			name: "metrics file",
			args: []string{"-metrics-file", "/tmp/statgrid.prom", "s.hcl"},
			want: &app.Config{StudyPath: "s.hcl", OutputFormat: report.FormatText, LogFormat: "text", LogLevel: "info", WorkerCount: 1, MetricsFile: "/tmp/statgrid.prom"},
		},
		{name: "no path prints usage", args: nil, shouldExit: true},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "unknown flag", args: []string{"-nope"}, errCode: 2},
		{name: "bad format", args: []string{"-format", "xml", "s.hcl"}, errCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "s.hcl"}, errCode: 2},
		{name: "bad log level", args: []string{"-log-level", "trace", "s.hcl"}, errCode: 2},
		{name: "zero workers", args: []string{"-workers", "0", "s.hcl"}, errCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			var out bytes.Buffer

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, &out)

			// --- Assert ---
			if tc.errCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, tc.errCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.shouldExit, shouldExit)
			require.Equal(t, tc.want, cfg)
			if tc.shouldExit {
				require.Contains(t, out.String(), "Usage:")
			}
		})
	}
}
