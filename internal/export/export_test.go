package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRun_HeaderAndRow(t *testing.T) {
	run := &Run{
		Parameters: []string{"matrix", "degree"},
		Metrics:    []string{"simSeconds", "insts"},
		Records: []model.AugmentedRecord{
			{
				Record:  model.NewRecord("matrix", "a", "degree", "2"),
				Path:    "a/DG2/stats.txt",
				Metrics: map[string]model.Value{"simSeconds": model.FoundValue("0.1"), "insts": model.NotFoundValue()},
			},
			{
				Record:  model.NewRecord("matrix", "b", "degree", "2"),
				Path:    "b/DG2/stats.txt",
				Metrics: map[string]model.Value{"simSeconds": model.FileMissingValue(), "insts": model.FileMissingValue()},
			},
		},
	}

	require.Equal(t, []string{"matrix", "degree", "path", "simSeconds", "insts"}, run.Header())
	require.Equal(t, []string{"a", "2", "a/DG2/stats.txt", "0.1", "EMPTY"}, run.Row(0))
	require.Equal(t, []string{"b", "2", "b/DG2/stats.txt", "NAN", "NAN"}, run.Row(1))
}

func TestNewRun(t *testing.T) {
	run := NewRun("sweep", []string{"degree"}, []string{"ipc"}, nil)

	_, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	require.Equal(t, "sweep", run.Study)
	require.False(t, run.CreatedAt.IsZero())
	require.NotEqual(t, run.ID, NewRun("sweep", nil, nil, nil).ID)
}

func TestCreateFile_MakesParents(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out", "nested", "records.csv")

	f, err := CreateFile(name)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = os.Stat(name)
	require.NoError(t, err)
}
