// Package local registers the "local" source: results files on the local
// file system.
package local

import (
	"context"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/source"
)

// Kind is the source kind name used in study files.
const Kind = "local"

// Module implements the registry.Module interface for this package.
type Module struct{}

// New builds a local source. Options: root (optional).
func New(_ context.Context, opts config.Options) (source.Source, error) {
	return source.NewLocal(opts.Get("root", "")), nil
}

// Register registers the source factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(Kind, New)
}
