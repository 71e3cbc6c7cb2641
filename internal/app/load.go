package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
)

// ErrNoStudies is returned when the study path holds no study definitions.
var ErrNoStudies = errors.New("no studies found")

// loadModel runs every loader over path and merges their studies, then
// narrows the result to one study when name is set.
func loadModel(ctx context.Context, loaders []config.Loader, path, name string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &config.Model{}

	for _, l := range loaders {
		m, err := l.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loader finished.", "extensions", l.Extensions(), "studies", len(m.Studies))
		merged.Studies = append(merged.Studies, m.Studies...)
	}

	if len(merged.Studies) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStudies, path)
	}
	if err := config.ValidateModel(merged); err != nil {
		return nil, err
	}

	if name != "" {
		s := merged.Study(name)
		if s == nil {
			return nil, fmt.Errorf("study %q not found in %s", name, path)
		}
		merged.Studies = []*config.Study{s}
	}
	return merged, nil
}
