package pivot

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/specialistvlad/statgrid/internal/model"
)

var (
	// ErrDuplicateEntry is returned when two records share a (row, column) pair.
	ErrDuplicateEntry = errors.New("duplicate pivot entry")
	// ErrUnknownField is returned when a record has no field of the requested name.
	ErrUnknownField = errors.New("unknown pivot field")
)

// Spec names the three fields of a pivot.
type Spec struct {
	Index   string
	Columns string
	Values  string
}

type cellKey struct {
	row, col string
}

// Table is the result of a pivot.
type Table struct {
	Spec Spec
	Rows []string
	Cols []string

	cells map[cellKey]model.Value
}

// Cell returns the value at (row, col). ok is false when no record produced
// that pair.
func (t *Table) Cell(row, col string) (model.Value, bool) {
	v, ok := t.cells[cellKey{row: row, col: col}]
	return v, ok
}

// Len returns the number of filled cells.
func (t *Table) Len() int {
	return len(t.cells)
}

// Build pivots recs according to spec.
func Build(recs []model.AugmentedRecord, spec Spec) (*Table, error) {
	t := &Table{
		Spec:  spec,
		cells: make(map[cellKey]model.Value, len(recs)),
	}
	rowSeen := make(map[string]struct{})
	colSeen := make(map[string]struct{})

	for i, r := range recs {
		row, err := keyOf(r, spec.Index, i)
		if err != nil {
			return nil, err
		}
		col, err := keyOf(r, spec.Columns, i)
		if err != nil {
			return nil, err
		}
		val, ok := r.Field(spec.Values)
		if !ok {
			return nil, fmt.Errorf("%w %q in record %d", ErrUnknownField, spec.Values, i)
		}

		k := cellKey{row: row, col: col}
		if _, dup := t.cells[k]; dup {
			return nil, fmt.Errorf("%w: %s=%q, %s=%q", ErrDuplicateEntry, spec.Index, row, spec.Columns, col)
		}
		t.cells[k] = val

		if _, ok := rowSeen[row]; !ok {
			rowSeen[row] = struct{}{}
			t.Rows = append(t.Rows, row)
		}
		if _, ok := colSeen[col]; !ok {
			colSeen[col] = struct{}{}
			t.Cols = append(t.Cols, col)
		}
	}

	SortKeys(t.Rows)
	SortKeys(t.Cols)
	return t, nil
}

// keyOf renders a row or column key. Missing-data values are keyed by their
// placeholder text.
func keyOf(r model.AugmentedRecord, field string, idx int) (string, error) {
	v, ok := r.Field(field)
	if !ok {
		return "", fmt.Errorf("%w %q in record %d", ErrUnknownField, field, idx)
	}
	return v.String(), nil
}

// SortKeys sorts keys ascending: numerically when every key parses as a
// finite number, lexicographically otherwise. NaN and Inf spellings, such as
// the missing-file placeholder, count as non-numeric.
func SortKeys(keys []string) {
	nums := make(map[string]float64, len(keys))
	for _, k := range keys {
		f, err := strconv.ParseFloat(k, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			sort.Strings(keys)
			return
		}
		nums[k] = f
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return nums[keys[i]] < nums[keys[j]]
	})
}
