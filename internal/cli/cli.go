package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/statgrid/internal/app"
	"github.com/specialistvlad/statgrid/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("statgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
statgrid - Aggregates simulator statistics across a parameter sweep.

Usage:
  statgrid [options] [STUDY_PATH]

Arguments:
  STUDY_PATH
    Path to a study file (.hcl, .yaml, .yml) or a directory of study files.

Options:
`)
		flagSet.PrintDefaults()
	}

	studyFlag := flagSet.String("study", "", "Path to the study file or directory.")
	sFlag := flagSet.String("s", "", "Path to the study file or directory (shorthand).")
	nameFlag := flagSet.String("name", "", "Run only the study with this name.")
	formatFlag := flagSet.String("format", string(report.FormatText), "Pivot table output format. Options: 'text', 'csv', 'markdown' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 1, "Number of results files read concurrently.")
	metricsFileFlag := flagSet.String("metrics-file", "", "Write per-study extraction gauges to this Prometheus textfile.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *studyFlag != "" {
		path = *studyFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Study path determined.", "path", path)

	if path == "" {
		slog.Debug("No study path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := report.ParseFormat(strings.ToLower(*formatFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: " + err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		StudyPath:    path,
		StudyName:    *nameFlag,
		OutputFormat: format,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		WorkerCount:  *workersFlag,
		MetricsFile:  *metricsFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
