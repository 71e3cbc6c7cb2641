package integration_tests

import (
	"testing"

	"github.com/specialistvlad/statgrid/internal/pivot"
	"github.com/specialistvlad/statgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestErrorHandling_PivotConflictFailsRun checks that two records landing in
// the same pivot cell abort the run instead of one silently winning.
func TestErrorHandling_PivotConflictFailsRun(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"studies/s.hcl": `
study "conflict" {
  path_template = "${matrix}_${degree}"
  metrics       = ["simSeconds"]
  parameter "matrix" { values = ["a"] }
  parameter "degree" { values = [2, 4] }
  pivot "p" {
    index   = "matrix"
    columns = "simSeconds"
    values  = "simSeconds"
  }
  source "local" { root = "{{root}}/results" }
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	// Both results files are missing, so both records share the NAN column.
	require.ErrorIs(t, result.Err, pivot.ErrDuplicateEntry)
	testutil.AssertStudyExtracted(t, result, "conflict", 2, 0, 0, 2)
}
