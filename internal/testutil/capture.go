package testutil

import (
	"context"
	"sync"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"
)

// CaptureKind is the export kind registered by CaptureModule.
const CaptureKind = "capture"

// CaptureModule registers an exporter that keeps every run in memory.
type CaptureModule struct {
	mu   sync.Mutex
	runs []*export.Run
}

// Register registers the "capture" exporter.
func (m *CaptureModule) Register(r *registry.Registry) {
	r.RegisterExporter(CaptureKind, func(context.Context, config.Options) (export.Exporter, error) {
		return captureExporter{m: m}, nil
	})
}

// Runs returns the captured runs in export order.
func (m *CaptureModule) Runs() []*export.Run {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*export.Run(nil), m.runs...)
}

type captureExporter struct {
	m *CaptureModule
}

func (c captureExporter) Export(_ context.Context, run *export.Run) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.m.runs = append(c.m.runs, run)
	return nil
}

func (c captureExporter) String() string { return CaptureKind }
