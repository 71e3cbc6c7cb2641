package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/statgrid/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	StudyPath string // .hcl / .yaml files or directories
	StudyName string // run only this study; empty runs all

	OutputFormat report.Format
	LogFormat    string
	LogLevel     string
	WorkerCount  int

	MetricsFile string // Prometheus textfile written after a successful run; empty disables it
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.StudyPath == "" {
		return nil, errors.New("StudyPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}
	if _, err := report.ParseFormat(string(cfg.OutputFormat)); err != nil {
		return nil, err
	}
	return &cfg, nil
}
