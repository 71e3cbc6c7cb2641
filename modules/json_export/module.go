// Package json_export registers the "json" exporter, which writes a run as a
// single JSON document.
package json_export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"
)

// Kind is the export kind name used in study files.
const Kind = "json"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Document is the JSON layout of a run.
type Document struct {
	ID         string    `json:"id"`
	Study      string    `json:"study"`
	CreatedAt  time.Time `json:"created_at"`
	Parameters []string  `json:"parameters"`
	Metrics    []string  `json:"metrics"`
	Records    []Record  `json:"records"`
}

// Record is one augmented record.
type Record struct {
	Parameters map[string]string `json:"parameters"`
	Path       string            `json:"path"`
	Metrics    map[string]Metric `json:"metrics"`
}

// Metric keeps the outcome kind next to the text, so a missing value is never
// confused with a value that happens to read "NAN".
type Metric struct {
	Kind  string  `json:"kind"`
	Value *string `json:"value,omitempty"`
}

// NewDocument converts a run.
func NewDocument(run *export.Run) *Document {
	doc := &Document{
		ID:         run.ID,
		Study:      run.Study,
		CreatedAt:  run.CreatedAt,
		Parameters: run.Parameters,
		Metrics:    run.Metrics,
		Records:    make([]Record, 0, len(run.Records)),
	}
	for _, rec := range run.Records {
		r := Record{
			Parameters: rec.Record.Map(),
			Path:       rec.Path,
			Metrics:    make(map[string]Metric, len(rec.Metrics)),
		}
		for name, v := range rec.Metrics {
			m := Metric{Kind: v.Kind.String()}
			if v.IsFound() {
				text := v.Text
				m.Value = &text
			}
			r.Metrics[name] = m
		}
		doc.Records = append(doc.Records, r)
	}
	return doc
}

// Exporter writes a run to a JSON file.
type Exporter struct {
	Path   string
	Indent bool
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

	enc := json.NewEncoder(f)
	if e.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewDocument(run)); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	ctxlog.FromContext(ctx).Info("Exported records.", "format", Kind, "path", e.Path, "records", len(run.Records))
	return nil
}

// String implements export.Exporter.
func (e *Exporter) String() string { return "json:" + e.Path }

// New builds a JSON exporter. Options: path (required), indent ("true" or
// "false", default "true").
func New(_ context.Context, opts config.Options) (export.Exporter, error) {
	p, err := opts.Require("path")
	if err != nil {
		return nil, err
	}
	var indent bool
	switch v := opts.Get("indent", "true"); v {
	case "true":
		indent = true
	case "false":
	default:
		return nil, fmt.Errorf("invalid indent %q: want true or false", v)
	}
	return &Exporter{Path: p, Indent: indent}, nil
}

// Register registers the exporter factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExporter(Kind, New)
}
