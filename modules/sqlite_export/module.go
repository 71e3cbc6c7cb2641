// Package sqlite_export registers the "sqlite" exporter. Each run becomes a
// row in `runs`, and every field of every record becomes a row in
// `record_values` (long format), so runs of different studies can share a
// database.
package sqlite_export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"

	_ "modernc.org/sqlite"
)

// Kind is the export kind name used in study files.
const Kind = "sqlite"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Exporter appends runs to a SQLite database file.
type Exporter struct {
	Path string
}

// Export implements export.Exporter. The whole run is written in one
// transaction.
func (e *Exporter) Export(ctx context.Context, run *export.Run) (err error) {
	if dir := filepath.Dir(e.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", e.Path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sqlite: %w", cerr)
		}
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := insertRun(ctx, tx, run); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", run.ID, err)
	}

	ctxlog.FromContext(ctx).Info("Exported records.", "format", Kind, "path", e.Path, "run_id", run.ID, "records", len(run.Records))
	return nil
}

func insertRun(ctx context.Context, tx *sql.Tx, run *export.Run) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, study, created_at) VALUES (?, ?, ?)`,
		run.ID, run.Study, run.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_values (run_id, record_index, field, kind, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	insert := func(i int, field, kind string, value any) error {
		if _, err := stmt.ExecContext(ctx, run.ID, i, field, kind, value); err != nil {
			return fmt.Errorf("failed to insert record %d field %q: %w", i, field, err)
		}
		return nil
	}

	for i, rec := range run.Records {
		for _, p := range run.Parameters {
			v, _ := rec.Record.Get(p)
			if err := insert(i, p, kindParameter, v); err != nil {
				return err
			}
		}
		if err := insert(i, export.PathColumn, kindPath, rec.Path); err != nil {
			return err
		}
		for _, m := range run.Metrics {
			v := rec.Metrics[m]
			var value any
			if v.IsFound() {
				value = v.Text
			}
			if err := insert(i, m, v.Kind.String(), value); err != nil {
				return err
			}
		}
	}
	return nil
}

// String implements export.Exporter.
func (e *Exporter) String() string { return "sqlite:" + e.Path }

// New builds a SQLite exporter. Options: path (required).
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
