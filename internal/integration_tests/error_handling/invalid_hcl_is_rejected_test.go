package integration_tests

import (
	"testing"

	"github.com/specialistvlad/statgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	// Define an HCL string with a clear syntax error (a missing closing brace).
	files := map[string]string{
		"studies/main.hcl": `
			study "broken" {
				parameter "a" {
			// Missing closing brace here
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.Error(t, result.Err)
	require.Nil(t, result.App, "the app must not start with a broken study file")
	require.Contains(t, result.Err.Error(), "failed to parse")
}
