package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/extract"
	"github.com/specialistvlad/statgrid/internal/grid"
	"github.com/specialistvlad/statgrid/internal/metrics"
	"github.com/specialistvlad/statgrid/internal/pivot"
	"github.com/specialistvlad/statgrid/internal/report"
)

// Run executes every loaded study in declaration order and writes the pivot
// tables to the output writer. The first failing study stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "studies", len(a.model.Studies))

	renderer := report.New(a.outW, a.config.OutputFormat)
	rec := metrics.New()
	for _, s := range a.model.Studies {
		if err := a.runStudy(ctx, s, renderer, rec); err != nil {
			return fmt.Errorf("study %q: %w", s.Name, err)
		}
	}

	if a.config.MetricsFile != "" {
		if err := rec.WriteFile(a.config.MetricsFile); err != nil {
			return err
		}
		a.logger.Debug("Metrics file written.", "path", a.config.MetricsFile)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runStudy(ctx context.Context, s *config.Study, renderer *report.Renderer, rec *metrics.Recorder) (err error) {
	started := time.Now()
	ctx, logger := ctxlog.With(ctx, "study", s.Name)

	records := grid.Generate(s.Space)
	logger.Debug("Records generated.", "count", len(records), "parameters", len(s.Space))

	src, err := a.registry.NewSource(ctx, s.Source)
	if err != nil {
		return err
	}
	if c, ok := src.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil {
				logger.Warn("Failed to close source.", "source", src.String(), "error", cerr)
			}
		}()
	}
	logger.Debug("Source ready.", "source", src.String())

	ext := extract.New(src, s.StatsFile, s.Metrics, a.config.WorkerCount)
	augmented, err := ext.Extract(ctx, records, s.PathTemplate)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	sum := extract.Summarize(augmented)
	logger.Info("Study extracted.",
		"records", sum.Records,
		"found", sum.Found,
		"not_found", sum.NotFound,
		"file_missing", sum.FileMissing,
		"missing_files", sum.MissingFiles,
	)

	if len(s.Pivots) == 0 && len(s.Exports) == 0 {
		logger.Warn("Study declares no pivots and no exports; nothing to output.")
	}

	// Pivots are built before any exporter runs so a pivot conflict leaves
	// no partial outputs behind.
	tables := make([]*pivot.Table, len(s.Pivots))
	for i, pv := range s.Pivots {
		tbl, err := pivot.Build(augmented, pv.Spec)
		if err != nil {
			return fmt.Errorf("pivot %q: %w", pv.Name, err)
		}
		tables[i] = tbl
	}

	run := export.NewRun(s.Name, s.Space.Names(), s.Metrics, augmented)
	for _, spec := range s.Exports {
		exp, err := a.registry.NewExporter(ctx, spec)
		if err != nil {
			return err
		}
		if err := exp.Export(ctx, run); err != nil {
			return fmt.Errorf("export %s failed: %w", exp.String(), err)
		}
	}

	for i, pv := range s.Pivots {
		if err := renderer.Render(s.Name+"/"+pv.Name, tables[i]); err != nil {
			return fmt.Errorf("failed to render pivot %q: %w", pv.Name, err)
		}
	}

	rec.ObserveStudy(s.Name, sum, time.Since(started), time.Now())
	return nil
}
