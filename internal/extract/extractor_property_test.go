package extract

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pathtmpl"
)

func TestExtract_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	tmpl := pathtmpl.MustParse("${id}")

	properties.Property("K records and M metrics give K records of fields+M keys", prop.ForAll(
		func(k, m int, present uint64) bool {
			files := make(map[string]string)
			records := make([]model.Record, k)
			for i := range records {
				id := fmt.Sprint(i)
				records[i] = model.NewRecord("id", id, "extra", "x")
				if present&(1<<uint(i)) != 0 {
					files[id+"/stats.txt"] = "metric0 1\nmetric3 4\n"
				}
			}
			metrics := make([]string, m)
			for j := range metrics {
				metrics[j] = fmt.Sprintf("metric%d", j)
			}

			ex := New(&fakeSource{files: files}, "", metrics, 3)
			got, err := ex.Extract(context.Background(), records, tmpl)
			if err != nil || len(got) != k {
				return false
			}
			for i, a := range got {
				if a.Len() != records[i].Len()+m {
					return false
				}
				fileExists := present&(1<<uint(i)) != 0
				for _, v := range a.Metrics {
					if !fileExists && v.Kind != model.FileMissing {
						return false
					}
					if fileExists && v.Kind == model.FileMissing {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 6),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
