// Package metrics keeps per-study extraction gauges in a Prometheus registry
// and writes them in the text exposition format, for the node_exporter
// textfile collector or a later push.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/statgrid/internal/extract"
	"github.com/specialistvlad/statgrid/internal/model"
)

// Recorder holds the gauges of one process run.
type Recorder struct {
	reg          *prometheus.Registry
	records      *prometheus.GaugeVec
	values       *prometheus.GaugeVec
	missingFiles *prometheus.GaugeVec
	duration     *prometheus.GaugeVec
	lastSuccess  *prometheus.GaugeVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgrid_records",
			Help: "Number of records generated for a study.",
		}, []string{"study"}),
		values: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgrid_metric_values",
			Help: "Number of metric values per outcome kind.",
		}, []string{"study", "kind"}),
		missingFiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgrid_missing_results_files",
			Help: "Number of records whose results file did not exist.",
		}, []string{"study"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgrid_study_duration_seconds",
			Help: "Wall time spent extracting and exporting a study.",
		}, []string{"study"}),
		lastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statgrid_study_last_success_timestamp_seconds",
			Help: "Unix time at which a study last completed.",
		}, []string{"study"}),
	}
	r.reg.MustRegister(r.records, r.values, r.missingFiles, r.duration, r.lastSuccess)
	return r
}

// ObserveStudy records the outcome of one completed study.
func (r *Recorder) ObserveStudy(study string, s extract.Summary, took time.Duration, at time.Time) {
	r.records.WithLabelValues(study).Set(float64(s.Records))
	r.values.WithLabelValues(study, model.Found.String()).Set(float64(s.Found))
	r.values.WithLabelValues(study, model.NotFound.String()).Set(float64(s.NotFound))
	r.values.WithLabelValues(study, model.FileMissing.String()).Set(float64(s.FileMissing))
	r.missingFiles.WithLabelValues(study).Set(float64(s.MissingFiles))
	r.duration.WithLabelValues(study).Set(took.Seconds())
	r.lastSuccess.WithLabelValues(study).Set(float64(at.Unix()))
}

// Registry exposes the underlying registry, e.g. for a push gateway.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteFile atomically writes all gauges to path in text format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
