package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/source"
)

// ErrUnknownKind is returned when a study names a source or export kind that
// no module registered.
var ErrUnknownKind = errors.New("unknown kind")

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// SourceFactory builds a Source from the options of a `source` block.
type SourceFactory func(ctx context.Context, opts config.Options) (source.Source, error)

// ExporterFactory builds an Exporter from the options of an `export` block.
type ExporterFactory func(ctx context.Context, opts config.Options) (export.Exporter, error)

// Registry holds all the registered factories for a single application instance.
type Registry struct {
	SourceRegistry   map[string]SourceFactory
	ExporterRegistry map[string]ExporterFactory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		SourceRegistry:   make(map[string]SourceFactory),
		ExporterRegistry: make(map[string]ExporterFactory),
	}
}

// NewSource builds the source a study asked for.
func (r *Registry) NewSource(ctx context.Context, spec config.SourceSpec) (source.Source, error) {
	factory, ok := r.SourceRegistry[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("source: %w %q", ErrUnknownKind, spec.Kind)
	}
	src, err := factory(ctx, spec.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to create source %q: %w", spec.Kind, err)
	}
	return src, nil
}

// NewExporter builds the exporter an `export` block asked for.
func (r *Registry) NewExporter(ctx context.Context, spec config.ExportSpec) (export.Exporter, error) {
	factory, ok := r.ExporterRegistry[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("export: %w %q", ErrUnknownKind, spec.Kind)
	}
	exp, err := factory(ctx, spec.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter %q: %w", spec.Kind, err)
	}
	return exp, nil
}
