package sqlite_export

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/stretchr/testify/require"
)

func testRun() *export.Run {
	return export.NewRun("sweep", []string{"matrix", "degree"}, []string{"simSeconds", "insts"}, []model.AugmentedRecord{
		{
			Record:  model.NewRecord("matrix", "a", "degree", "2"),
			Path:    "a/DG2/stats.txt",
			Metrics: map[string]model.Value{"simSeconds": model.FoundValue("0.5"), "insts": model.NotFoundValue()},
		},
		{
			Record:  model.NewRecord("matrix", "a", "degree", "4"),
			Path:    "a/DG4/stats.txt",
			Metrics: map[string]model.Value{"simSeconds": model.FileMissingValue(), "insts": model.FileMissingValue()},
		},
	})
}

func TestExporter_Export(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "db", "runs.db")
	exp := &Exporter{Path: dbPath}
	run := testRun()

	// --- Act ---
	require.NoError(t, exp.Export(ctx, run))
	require.NoError(t, exp.Export(ctx, testRun()))

	// --- Assert ---
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var runs int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&runs))
	require.Equal(t, 2, runs)

	var study string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT study FROM runs WHERE id = ?`, run.ID).Scan(&study))
	require.Equal(t, "sweep", study)

	var fields int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM record_values WHERE run_id = ?`, run.ID).Scan(&fields))
	require.Equal(t, 2*(2+1+2), fields)

	var kind string
	var value sql.NullString
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT kind, value FROM record_values WHERE run_id = ? AND record_index = 0 AND field = 'simSeconds'`, run.ID,
	).Scan(&kind, &value))
	require.Equal(t, "found", kind)
	require.Equal(t, "0.5", value.String)

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT kind, value FROM record_values WHERE run_id = ? AND record_index = 1 AND field = 'insts'`, run.ID,
	).Scan(&kind, &value))
	require.Equal(t, "file_missing", kind)
	require.False(t, value.Valid)

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT kind, value FROM record_values WHERE run_id = ? AND record_index = 1 AND field = 'degree'`, run.ID,
	).Scan(&kind, &value))
	require.Equal(t, "parameter", kind)
	require.Equal(t, "4", value.String)
}

func TestExporter_DuplicateRunIDFails(t *testing.T) {
	ctx := context.Background()
	exp := &Exporter{Path: filepath.Join(t.TempDir(), "runs.db")}
	run := testRun()

	require.NoError(t, exp.Export(ctx, run))
	err := exp.Export(ctx, run)

	require.Error(t, err)
}
