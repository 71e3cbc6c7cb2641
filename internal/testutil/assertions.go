package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStudyExtracted checks the log output for a study's extraction
// summary with the given counts.
func AssertStudyExtracted(t *testing.T, result *HarnessResult, study string, records, found, notFound, fileMissing int) {
	t.Helper()

	want := fmt.Sprintf("study=%s records=%d found=%d not_found=%d file_missing=%d", study, records, found, notFound, fileMissing)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Study extracted.") && strings.Contains(line, want) {
			return
		}
	}
	require.Fail(t, "extraction summary not found", "want %q in logs:\n%s", want, result.LogOutput)
}
