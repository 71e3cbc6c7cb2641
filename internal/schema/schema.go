// Package schema holds the HCL decoding structs for study files. They mirror
// the file syntax one to one and are translated into the format-agnostic
// config model by the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// File represents the top-level structure of a study file.
type File struct {
	Studies []*Study `hcl:"study,block"`
	Remain  hcl.Body `hcl:",remain"`
}

// Study represents a `study` block.
type Study struct {
	Name string `hcl:"name,label"`

	// PathTemplate is kept unevaluated; placeholders are record fields that
	// only exist once the grid has been expanded.
	PathTemplate hcl.Expression `hcl:"path_template"`
	StatsFile    *string        `hcl:"stats_file,optional"`
	Metrics      []string       `hcl:"metrics"`

	Parameters []*Parameter `hcl:"parameter,block"`
	Pivots     []*Pivot     `hcl:"pivot,block"`
	Source     *Plugin      `hcl:"source,block"`
	Exports    []*Plugin    `hcl:"export,block"`
}

// Parameter represents a `parameter` block. Values may be a list of strings,
// numbers or bools.
type Parameter struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values"`
}

// Pivot represents a `pivot` block.
type Pivot struct {
	Name    string `hcl:"name,label"`
	Index   string `hcl:"index"`
	Columns string `hcl:"columns"`
	Values  string `hcl:"values"`
}

// Plugin represents a `source` or `export` block: a registered kind plus
// free-form string attributes.
type Plugin struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}
