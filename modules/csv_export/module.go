// Package csv_export registers the "csv" exporter: one header row, then one
// row per record with parameters, results path and metric values.
package csv_export

import (
	"context"
	"encoding/csv"
	"fmt"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"
)

// Kind is the export kind name used in study files.
const Kind = "csv"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Exporter writes a run to a CSV file.
type Exporter struct {
	Path string
}

// Export implements export.Exporter.
func (e *Exporter) Export(ctx context.Context, run *export.Run) (err error) {
	f, err := export.CreateFile(e.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", e.Path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(run.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range run.Records {
		if err := w.Write(run.Row(i)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", e.Path, err)
	}

	ctxlog.FromContext(ctx).Info("Exported records.", "format", Kind, "path", e.Path, "records", len(run.Records))
	return nil
}

// String implements export.Exporter.
func (e *Exporter) String() string { return "csv:" + e.Path }

// New builds a CSV exporter. Options: path (required).
func New(_ context.Context, opts config.Options) (export.Exporter, error) {
	p, err := opts.Require("path")
	if err != nil {
		return nil, err
	}
	return &Exporter{Path: p}, nil
}

// Register registers the exporter factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExporter(Kind, New)
}
