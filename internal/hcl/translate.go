// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pathtmpl"
	"github.com/specialistvlad/statgrid/internal/pivot"
	"github.com/specialistvlad/statgrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateStudy converts the HCL-specific study schema into the agnostic model.
func (l *Loader) translateStudy(ctx context.Context, s *schema.Study, file string, src []byte, evalCtx *hcl.EvalContext) (*config.Study, error) {
	logger := ctxlog.FromContext(ctx)

	study := &config.Study{
		Name:     s.Name,
		FilePath: file,
		Metrics:  s.Metrics,
		Source:   config.SourceSpec{Kind: config.DefaultSourceKind, Options: config.Options{}},
	}
	// gohcl hands back a null expression for an absent attribute; leaving
	// the template nil lets validation report it.
	if !isNullExpr(s.PathTemplate) {
		study.PathTemplate = pathtmpl.FromExpression(s.PathTemplate, exprSource(s.PathTemplate, src))
	}
	if s.StatsFile != nil {
		study.StatsFile = *s.StatsFile
	}

	for _, p := range s.Parameters {
		values, err := toStrings(p.Values, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in study '%s' (%s), parameter '%s': %w", s.Name, file, p.Name, err)
		}
		study.Space = append(study.Space, model.Parameter{Name: p.Name, Values: values})
	}

	for _, p := range s.Pivots {
		study.Pivots = append(study.Pivots, config.Pivot{
			Name: p.Name,
			Spec: pivot.Spec{Index: p.Index, Columns: p.Columns, Values: p.Values},
		})
	}

	if s.Source != nil {
		opts, err := pluginOptions(s.Source, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in study '%s' (%s), source '%s': %w", s.Name, file, s.Source.Kind, err)
		}
		study.Source = config.SourceSpec{Kind: s.Source.Kind, Options: opts}
	}

	for _, e := range s.Exports {
		opts, err := pluginOptions(e, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("in study '%s' (%s), export '%s': %w", s.Name, file, e.Kind, err)
		}
		study.Exports = append(study.Exports, config.ExportSpec{Kind: e.Kind, Options: opts})
	}

	logger.Debug("Translated study.", "study", study.Name, "parameters", len(study.Space), "metrics", len(study.Metrics), "pivots", len(study.Pivots))
	return study, nil
}

// toStrings evaluates a list expression and coerces each element to a string.
func toStrings(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, fmt.Errorf("values must not be null")
	}
	ty := val.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("values must be a list, got %s", ty.FriendlyName())
	}

	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := ctyToString(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ctyToString converts a primitive value to its string form. Numbers use
// their shortest decimal representation.
func ctyToString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", fmt.Errorf("null value is not allowed")
	}
	if !v.Type().IsPrimitiveType() {
		return "", fmt.Errorf("expected a string, number or bool, got %s", v.Type().FriendlyName())
	}
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	return sv.AsString(), nil
}

// pluginOptions converts the attributes of a source or export block into
// string options.
func pluginOptions(p *schema.Plugin, evalCtx *hcl.EvalContext) (config.Options, error) {
	opts := config.Options{}
	if p.Body == nil {
		return opts, nil
	}
	attrs, diags := p.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		s, err := ctyToString(val)
		if err != nil {
			return nil, fmt.Errorf("attribute '%s': %w", name, err)
		}
		opts[name] = s
	}
	return opts, nil
}

func isNullExpr(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// exprSource returns the template text of expr without its surrounding quotes.
func exprSource(expr hcl.Expression, src []byte) string {
	rng := expr.Range()
	if rng.End.Byte > len(src) || rng.Start.Byte >= rng.End.Byte {
		return ""
	}
	text := strings.TrimSpace(string(rng.SliceBytes(src)))
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}
	return text
}
