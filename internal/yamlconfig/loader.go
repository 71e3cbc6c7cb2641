package yamlconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/fsutil"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pathtmpl"
	"github.com/specialistvlad/statgrid/internal/pivot"
	"gopkg.in/yaml.v3"
)

// fileRoot is the top-level document.
type fileRoot struct {
	Studies []studyDoc `yaml:"studies"`
}

type studyDoc struct {
	Name         string      `yaml:"name"`
	PathTemplate string      `yaml:"path_template"`
	StatsFile    string      `yaml:"stats_file"`
	Metrics      []string    `yaml:"metrics"`
	Parameters   yaml.Node   `yaml:"parameters"`
	Pivots       []pivotDoc  `yaml:"pivots"`
	Source       yaml.Node   `yaml:"source"`
	Exports      []yaml.Node `yaml:"exports"`
}

type pivotDoc struct {
	Name    string `yaml:"name"`
	Index   string `yaml:"index"`
	Columns string `yaml:"columns"`
	Values  string `yaml:"values"`
}

// Loader reads studies from YAML files.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}

	cfg := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
		}
		for i := range root.Studies {
			study, err := translateStudy(&root.Studies[i], file)
			if err != nil {
				return nil, err
			}
			cfg.Studies = append(cfg.Studies, study)
		}
	}

	logger.Debug("YAML loading complete.", "files", len(files), "studies", len(cfg.Studies))
	return cfg, nil
}

func translateStudy(doc *studyDoc, file string) (*config.Study, error) {
	wrap := func(err error) error {
		return fmt.Errorf("in study '%s' (%s): %w", doc.Name, file, err)
	}

	study := &config.Study{
		Name:      doc.Name,
		FilePath:  file,
		StatsFile: doc.StatsFile,
		Metrics:   doc.Metrics,
		Source:    config.SourceSpec{Kind: config.DefaultSourceKind, Options: config.Options{}},
	}

	if doc.PathTemplate != "" {
		tmpl, err := pathtmpl.Parse(doc.PathTemplate)
		if err != nil {
			return nil, wrap(err)
		}
		study.PathTemplate = tmpl
	}

	space, err := parameters(&doc.Parameters)
	if err != nil {
		return nil, wrap(err)
	}
	study.Space = space

	for _, p := range doc.Pivots {
		study.Pivots = append(study.Pivots, config.Pivot{
			Name: p.Name,
			Spec: pivot.Spec{Index: p.Index, Columns: p.Columns, Values: p.Values},
		})
	}

	if !doc.Source.IsZero() {
		kind, opts, err := plugin(&doc.Source)
		if err != nil {
			return nil, wrap(fmt.Errorf("source: %w", err))
		}
		study.Source = config.SourceSpec{Kind: kind, Options: opts}
	}

	for i := range doc.Exports {
		kind, opts, err := plugin(&doc.Exports[i])
		if err != nil {
			return nil, wrap(fmt.Errorf("export %d: %w", i, err))
		}
		study.Exports = append(study.Exports, config.ExportSpec{Kind: kind, Options: opts})
	}

	return study, nil
}

// parameters reads a mapping of name -> list of scalars, keeping key order.
func parameters(node *yaml.Node) (model.Space, error) {
	if node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: parameters must be a mapping", node.Line)
	}

	space := make(model.Space, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: parameter '%s' must be a list", val.Line, key.Value)
		}
		values := make([]string, 0, len(val.Content))
		for _, item := range val.Content {
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return nil, fmt.Errorf("line %d: parameter '%s' values must be strings, numbers or bools", item.Line, key.Value)
			}
			values = append(values, item.Value)
		}
		space = append(space, model.Parameter{Name: key.Value, Values: values})
	}
	return space, nil
}

// plugin reads a mapping with a required "kind" key; the remaining scalar
// keys become options.
func plugin(node *yaml.Node) (string, config.Options, error) {
	if node.Kind != yaml.MappingNode {
		return "", nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	var kind string
	opts := config.Options{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return "", nil, fmt.Errorf("line %d: option '%s' must be a scalar", val.Line, key.Value)
		}
		if key.Value == "kind" {
			kind = val.Value
			continue
		}
		opts[key.Value] = val.Value
	}
	if kind == "" {
		return "", nil, fmt.Errorf("line %d: missing 'kind'", node.Line)
	}
	return kind, opts, nil
}
