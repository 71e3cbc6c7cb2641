package registry

import (
	"fmt"
	"log/slog"
)

// RegisterSource registers a factory for a source kind.
func (r *Registry) RegisterSource(kind string, factory SourceFactory) {
	if _, exists := r.SourceRegistry[kind]; exists {
		panic(fmt.Sprintf("source kind '%s' already registered", kind))
	}
	slog.Debug("Registering source.", "kind", kind)
	r.SourceRegistry[kind] = factory
}

// RegisterExporter registers a factory for an export kind.
func (r *Registry) RegisterExporter(kind string, factory ExporterFactory) {
	if _, exists := r.ExporterRegistry[kind]; exists {
		panic(fmt.Sprintf("exporter kind '%s' already registered", kind))
	}
	slog.Debug("Registering exporter.", "kind", kind)
	r.ExporterRegistry[kind] = factory
}
