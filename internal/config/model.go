package config

import (
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pathtmpl"
	"github.com/specialistvlad/statgrid/internal/pivot"
)

// DefaultSourceKind is used when a study declares no source.
const DefaultSourceKind = "local"

// Model is the unified, format-agnostic representation of all loaded studies.
type Model struct {
	Studies []*Study
}

// Study lookup by name. Returns nil if absent.
func (m *Model) Study(name string) *Study {
	for _, s := range m.Studies {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Study is one experiment grid: the parameter space to expand, where each
// record's results live, and which metrics to pull out of them.
type Study struct {
	Name         string
	FilePath     string
	Space        model.Space
	PathTemplate *pathtmpl.Template
	StatsFile    string
	Metrics      []string
	Pivots       []Pivot
	Source       SourceSpec
	Exports      []ExportSpec
}

// Pivot is a named pivot view of a study's results.
type Pivot struct {
	Name string
	pivot.Spec
}

// SourceSpec selects a registered source kind and its options.
type SourceSpec struct {
	Kind    string
	Options Options
}

// ExportSpec selects a registered exporter kind and its options.
type ExportSpec struct {
	Kind    string
	Options Options
}

// Options are the string attributes of a source or export block.
type Options map[string]string

// Get returns the option value or def when unset or empty.
func (o Options) Get(key, def string) string {
	if v, ok := o[key]; ok && v != "" {
		return v
	}
	return def
}

// Require returns the option value or an error naming the missing key.
func (o Options) Require(key string) (string, error) {
	v, ok := o[key]
	if !ok || v == "" {
		return "", &MissingOptionError{Key: key}
	}
	return v, nil
}

// MissingOptionError reports a required option that was not set.
type MissingOptionError struct {
	Key string
}

func (e *MissingOptionError) Error() string {
	return "missing required option \"" + e.Key + "\""
}
