package integration_tests

import (
	"testing"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestErrorHandling_StudyValidation collects every problem of a study into
// one error before anything runs.
func TestErrorHandling_StudyValidation(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"studies/bad.yaml": `
studies:
  - name: bad
    path_template: "${matrix}/${threads}"
    metrics: [simSeconds, simSeconds]
    parameters:
      matrix: [a]
    pivots:
      - {name: p, index: matrix, columns: degree, values: simSeconds}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.ErrorIs(t, result.Err, config.ErrInvalidStudy)
	msg := result.Err.Error()
	require.Contains(t, msg, `undeclared parameter "threads"`)
	require.Contains(t, msg, `metric "simSeconds" listed more than once`)
	require.Contains(t, msg, `columns "degree" is neither a parameter nor a metric`)
}
