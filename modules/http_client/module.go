// Package http_client registers the "http" source: results files served by a
// web server (an artifact store or a plain file server), fetched with a
// shared, pooled HTTP client.
package http_client

import (
	"context"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/source"
)

// Kind is the source kind name used in study files.
const Kind = "http"

// Module implements the registry.Module interface. It's the main entrypoint
// for the http_client module.
type Module struct{}

// New builds an HTTP source from study options: base_url (required) and
// timeout (a Go duration string).
func New(_ context.Context, opts config.Options) (source.Source, error) {
	base, err := opts.Require("base_url")
	if err != nil {
		return nil, err
	}
	client, err := newHttpClient(opts.Get("timeout", ""))
	if err != nil {
		return nil, err
	}
	return NewSource(client, base)
}

// Register registers the source factory with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSource(Kind, New)
}
