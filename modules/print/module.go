// Package print registers the "print" exporter, which writes every record of
// a run as an aligned table.
package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"
)

// Kind is the export kind name used in study files.
const Kind = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Exporter prints records to W.
type Exporter struct {
	W io.Writer
}

// Export implements export.Exporter.
func (e *Exporter) Export(ctx context.Context, run *export.Run) error {
	ctxlog.FromContext(ctx).Info("Printing records.", "study", run.Study, "records", len(run.Records))

	if len(run.Records) == 0 {
		_, err := fmt.Fprintf(e.W, "%s: (no records)\n", run.Study)
		return err
	}

	tw := tabwriter.NewWriter(e.W, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(run.Header(), "\t"))
	for i := range run.Records {
		fmt.Fprintln(tw, strings.Join(run.Row(i), "\t"))
	}
	return tw.Flush()
}

// String implements export.Exporter.
func (e *Exporter) String() string { return "print" }

// New builds a print exporter. Options: target = stdout (default) | stderr.
func New(_ context.Context, opts config.Options) (export.Exporter, error) {
	switch target := opts.Get("target", "stdout"); target {
	case "stdout":
		return &Exporter{W: os.Stdout}, nil
	case "stderr":
		return &Exporter{W: os.Stderr}, nil
	default:
		return nil, fmt.Errorf("invalid target %q: want stdout or stderr", target)
	}
}

// Register registers the exporter factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExporter(Kind, New)
}
