package integration_tests

import (
	"testing"

	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestErrorHandling_ParityCheck_UnknownKinds verifies that every source and
// export kind named by a study must be provided by a compiled-in module, and
// that all offenders are reported together.
func TestErrorHandling_ParityCheck_UnknownKinds(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	files := map[string]string{
		"studies/a.hcl": `
study "a" {
  path_template = "${x}"
  metrics       = ["m"]
  parameter "x" { values = ["1"] }
  source "ftp" { host = "example.org" }
  export "parquet" { path = "a.parquet" }
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.ErrorIs(t, result.Err, registry.ErrUnknownKind)
	require.Contains(t, result.Err.Error(), "source kind 'ftp' is not registered")
	require.Contains(t, result.Err.Error(), "export kind 'parquet' is not registered")
}
