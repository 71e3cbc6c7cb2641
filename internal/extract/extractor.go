package extract

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pathtmpl"
	"github.com/specialistvlad/statgrid/internal/source"
	"golang.org/x/sync/errgroup"
)

// DefaultStatsFile is the results file name appended to every resolved directory.
const DefaultStatsFile = "stats.txt"

// Extractor turns records into augmented records.
type Extractor struct {
	Source    source.Source
	StatsFile string
	Metrics   []string
	// Workers is the number of records processed concurrently. Values below
	// one mean sequential processing.
	Workers int
}

// New creates an Extractor reading from src.
func New(src source.Source, statsFile string, metrics []string, workers int) *Extractor {
	if statsFile == "" {
		statsFile = DefaultStatsFile
	}
	return &Extractor{
		Source:    src,
		StatsFile: statsFile,
		Metrics:   metrics,
		Workers:   workers,
	}
}

// Extract resolves each record's results file through tmpl and scrapes the
// configured metrics from it. The output has one entry per input record, in
// input order. A missing results file is not an error; any other failure
// aborts the whole batch.
func (e *Extractor) Extract(ctx context.Context, records []model.Record, tmpl *pathtmpl.Template) ([]model.AugmentedRecord, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Extraction started.", "records", len(records), "metrics", len(e.Metrics), "source", e.Source.String())

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	out := make([]model.AugmentedRecord, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			aug, err := e.extractOne(gctx, rec, tmpl)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = aug
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Extraction finished.", "records", len(out))
	return out, nil
}

// extractOne handles a single record.
func (e *Extractor) extractOne(ctx context.Context, rec model.Record, tmpl *pathtmpl.Template) (model.AugmentedRecord, error) {
	dir, err := tmpl.Render(rec)
	if err != nil {
		return model.AugmentedRecord{}, err
	}
	// path.Join cleans the result: "a/../b" becomes "b" and an empty
	// directory yields the bare file name, relative to the source root.
	name := path.Join(dir, e.StatsFile)

	aug := model.AugmentedRecord{
		Record:  rec,
		Metrics: make(map[string]model.Value, len(e.Metrics)),
		Path:    name,
	}

	lines, err := e.readLines(ctx, name)
	if err != nil {
		if source.IsNotExist(err) {
			ctxlog.FromContext(ctx).Debug("Results file missing.", "path", name)
			for _, m := range e.Metrics {
				aug.Metrics[m] = model.FileMissingValue()
			}
			return aug, nil
		}
		return model.AugmentedRecord{}, err
	}

	for _, m := range e.Metrics {
		aug.Metrics[m] = lookup(lines, m)
	}
	return aug, nil
}

// lookup scans all lines for metric; the first matching line wins.
func lookup(lines []string, metric string) model.Value {
	for _, line := range lines {
		if v, ok := ParseLine(line, metric); ok {
			return model.FoundValue(v)
		}
	}
	return model.NotFoundValue()
}

// readLines loads the whole results file. Lines have no length limit; a
// trailing "\r" is dropped.
func (e *Extractor) readLines(ctx context.Context, name string) ([]string, error) {
	rc, err := e.Source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var lines []string
	r := bufio.NewReader(rc)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}
}
