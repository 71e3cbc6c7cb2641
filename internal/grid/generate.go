package grid

import "github.com/specialistvlad/statgrid/internal/model"

// Generate returns one record per combination of parameter values.
//
// The product is built incrementally: the first parameter seeds one record per
// value, and every following parameter multiplies the current frontier by its
// value count. For each new parameter the outer loop runs over its values and
// the inner loop over the frontier. Duplicate input values yield duplicate
// records. A parameter with no values, or an empty space, yields no records.
func Generate(space model.Space) []model.Record {
	if len(space) == 0 {
		return nil
	}

	var frontier []model.Record
	for i, param := range space {
		if len(param.Values) == 0 {
			return nil
		}

		if i == 0 {
			frontier = make([]model.Record, 0, len(param.Values))
			for _, v := range param.Values {
				frontier = append(frontier, model.Record{}.With(param.Name, v))
			}
			continue
		}

		next := make([]model.Record, 0, len(frontier)*len(param.Values))
		for _, v := range param.Values {
			for _, rec := range frontier {
				next = append(next, rec.With(param.Name, v))
			}
		}
		frontier = next
	}
	return frontier
}

// Count returns the number of records Generate would produce for space.
func Count(space model.Space) int {
	if len(space) == 0 {
		return 0
	}
	n := 1
	for _, p := range space {
		n *= len(p.Values)
	}
	return n
}
