package extract

import "github.com/specialistvlad/statgrid/internal/model"

// Summary counts metric outcomes over a batch.
type Summary struct {
	Records     int
	Found       int
	NotFound    int
	FileMissing int
	// MissingFiles counts records whose results file did not exist.
	MissingFiles int
}

// Summarize tallies the metric values of recs.
func Summarize(recs []model.AugmentedRecord) Summary {
	s := Summary{Records: len(recs)}
	for _, r := range recs {
		missing := false
		for _, v := range r.Metrics {
			switch v.Kind {
			case model.Found:
				s.Found++
			case model.NotFound:
				s.NotFound++
			case model.FileMissing:
				s.FileMissing++
				missing = true
			}
		}
		if missing {
			s.MissingFiles++
		}
	}
	return s
}
