package pathtmpl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ErrUnknownVariable is returned by Render when the template references a
// name the record does not define.
var ErrUnknownVariable = errors.New("unknown template variable")

var functions = map[string]function.Function{
	"lower":     stdlib.LowerFunc,
	"upper":     stdlib.UpperFunc,
	"format":    stdlib.FormatFunc,
	"replace":   stdlib.ReplaceFunc,
	"trimspace": stdlib.TrimSpaceFunc,
}

// Template is a parsed path template. It is safe for concurrent use.
type Template struct {
	expr   hcl.Expression
	source string
}

// Parse parses src as an HCL template.
func Parse(src string) (*Template, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(src), "path_template", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse path template %q: %w", src, diags)
	}
	return &Template{expr: expr, source: src}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level defaults.
func MustParse(src string) *Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

// FromExpression wraps an already parsed HCL expression, such as a
// path_template attribute decoded from a study file. source is kept for
// display only.
func FromExpression(expr hcl.Expression, source string) *Template {
	return &Template{expr: expr, source: source}
}

// String returns the template source.
func (t *Template) String() string {
	return t.source
}

// Variables returns the sorted, unique names the template references.
func (t *Template) Variables() []string {
	seen := make(map[string]struct{})
	for _, trav := range t.expr.Variables() {
		seen[trav.RootName()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes the record's fields into the template.
func (t *Template) Render(rec model.Record) (string, error) {
	for _, name := range t.Variables() {
		if _, ok := rec.Get(name); !ok {
			return "", fmt.Errorf("%w %q in path template %q", ErrUnknownVariable, name, t.source)
		}
	}

	vars := make(map[string]cty.Value, rec.Len())
	for name, value := range rec.Map() {
		vars[name] = cty.StringVal(value)
	}
	evalCtx := &hcl.EvalContext{
		Variables: vars,
		Functions: functions,
	}

	val, diags := t.expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to render path template %q: %w", t.source, diags)
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("path template %q did not produce a string: %w", t.source, err)
	}
	if strVal.IsNull() || !strVal.IsKnown() {
		return "", fmt.Errorf("path template %q produced no value", t.source)
	}
	return strVal.AsString(), nil
}
