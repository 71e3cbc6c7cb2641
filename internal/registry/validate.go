package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
)

// ValidateModel performs a parity check between the loaded studies and the
// compiled-in modules: every source and export kind must be registered.
func (r *Registry) ValidateModel(ctx context.Context, m *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, s := range m.Studies {
		if _, ok := r.SourceRegistry[s.Source.Kind]; !ok {
			errs = append(errs, fmt.Sprintf("study '%s': source kind '%s' is not registered", s.Name, s.Source.Kind))
		}
		for _, e := range s.Exports {
			if _, ok := r.ExporterRegistry[e.Kind]; !ok {
				errs = append(errs, fmt.Sprintf("study '%s': export kind '%s' is not registered", s.Name, e.Kind))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: registry validation failed:\n- %s", ErrUnknownKind, strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "sources", len(r.SourceRegistry), "exporters", len(r.ExporterRegistry))
	return nil
}
