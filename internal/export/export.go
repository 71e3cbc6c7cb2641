// Package export defines how the augmented records of a run are handed to
// exporters, and the flat row layout shared by tabular exporters.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/statgrid/internal/model"
)

// Run is the complete result of one study execution.
type Run struct {
	ID         string
	Study      string
	CreatedAt  time.Time
	Parameters []string
	Metrics    []string
	Records    []model.AugmentedRecord
}

// NewRun stamps a fresh run with a random ID and the current time.
func NewRun(study string, params, metrics []string, records []model.AugmentedRecord) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Study:      study,
		CreatedAt:  time.Now().UTC(),
		Parameters: params,
		Metrics:    metrics,
		Records:    records,
	}
}

// Exporter persists a run.
type Exporter interface {
	Export(ctx context.Context, run *Run) error
	String() string
}

// PathColumn is the column holding each record's results path.
const PathColumn = model.PathField

// Header returns the column names of a flat row: parameters, the results
// path, then metrics.
func (r *Run) Header() []string {
	h := make([]string, 0, len(r.Parameters)+1+len(r.Metrics))
	h = append(h, r.Parameters...)
	h = append(h, PathColumn)
	h = append(h, r.Metrics...)
	return h
}

// Row renders record i in Header order. Metric values use their display
// text, so missing data shows up as the placeholder strings.
func (r *Run) Row(i int) []string {
	rec := r.Records[i]
	row := make([]string, 0, len(r.Parameters)+1+len(r.Metrics))
	for _, p := range r.Parameters {
		v, _ := rec.Record.Get(p)
		row = append(row, v)
	}
	row = append(row, rec.Path)
	for _, m := range r.Metrics {
		row = append(row, rec.Metrics[m].String())
	}
	return row
}

// CreateFile creates (or truncates) name, creating missing parent
// directories first.
func CreateFile(name string) (*os.File, error) {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	return f, nil
}
