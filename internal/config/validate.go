package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/statgrid/internal/model"
)

// ErrInvalidStudy is wrapped by every validation failure.
var ErrInvalidStudy = errors.New("invalid study")

// Validate checks a study for structural problems and reports all of them
// at once.
func Validate(s *Study) error {
	var errs []string

	if s.Name == "" {
		errs = append(errs, "study name is empty")
	}
	if s.PathTemplate == nil {
		errs = append(errs, "path_template is required")
	}

	params := make(map[string]struct{}, len(s.Space))
	for _, p := range s.Space {
		if p.Name == "" {
			errs = append(errs, "parameter with empty name")
			continue
		}
		if p.Name == model.PathField {
			errs = append(errs, fmt.Sprintf("parameter name %q is reserved", p.Name))
		}
		if _, dup := params[p.Name]; dup {
			errs = append(errs, fmt.Sprintf("parameter %q declared more than once", p.Name))
		}
		params[p.Name] = struct{}{}
	}

	if len(s.Metrics) == 0 {
		errs = append(errs, "at least one metric is required")
	}
	metrics := make(map[string]struct{}, len(s.Metrics))
	for _, m := range s.Metrics {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, "metric names must not be empty")
			continue
		}
		if m == model.PathField {
			errs = append(errs, fmt.Sprintf("metric name %q is reserved", m))
		}
		if _, dup := metrics[m]; dup {
			errs = append(errs, fmt.Sprintf("metric %q listed more than once", m))
		}
		if _, clash := params[m]; clash {
			errs = append(errs, fmt.Sprintf("metric %q has the same name as a parameter", m))
		}
		metrics[m] = struct{}{}
	}

	if s.PathTemplate != nil {
		for _, v := range s.PathTemplate.Variables() {
			if _, ok := params[v]; !ok {
				errs = append(errs, fmt.Sprintf("path_template references undeclared parameter %q", v))
			}
		}
	}

	known := func(field string) bool {
		_, p := params[field]
		_, m := metrics[field]
		return p || m
	}
	pivots := make(map[string]struct{}, len(s.Pivots))
	for _, pv := range s.Pivots {
		if _, dup := pivots[pv.Name]; dup {
			errs = append(errs, fmt.Sprintf("pivot %q declared more than once", pv.Name))
		}
		pivots[pv.Name] = struct{}{}
		for _, f := range []struct{ attr, field string }{
			{"index", pv.Index},
			{"columns", pv.Columns},
			{"values", pv.Values},
		} {
			if !known(f.field) {
				errs = append(errs, fmt.Sprintf("pivot %q: %s %q is neither a parameter nor a metric", pv.Name, f.attr, f.field))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q (%s):\n- %s", ErrInvalidStudy, s.Name, s.FilePath, strings.Join(errs, "\n- "))
	}
	return nil
}

// ValidateModel validates every study and rejects duplicate study names.
func ValidateModel(m *Model) error {
	var errs []error
	seen := make(map[string]string, len(m.Studies))
	for _, s := range m.Studies {
		if prev, dup := seen[s.Name]; dup {
			errs = append(errs, fmt.Errorf("%w %q: declared in both %s and %s", ErrInvalidStudy, s.Name, prev, s.FilePath))
			continue
		}
		seen[s.Name] = s.FilePath
		if err := Validate(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
