package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/hcl"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/yamlconfig"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	config   *Config
}

// DefaultLoaders returns the loaders for every supported study file format.
func DefaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlconfig.NewLoader()}
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. It loads and validates every study up front, so a
// configuration problem is reported before any results file is read.
func NewApp(outW, logW io.Writer, cfg *Config, loaders []config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = DefaultLoaders()
	}
	cfgModel, err := loadModel(ctx, loaders, cfg.StudyPath, cfg.StudyName)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "studies", len(cfgModel.Studies))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateModel(ctx, cfgModel); err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    cfgModel,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded studies.
func (a *App) Model() *config.Model {
	return a.model
}
