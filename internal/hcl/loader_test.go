package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/model"
	"github.com/specialistvlad/statgrid/internal/pivot"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullStudy(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "study.hcl", `
study "degree_sweep" {
  path_template = "${bench}_${matrix}/${prefetcher}_DG${degree}_m5out"
  stats_file    = "stats.txt"
  metrics       = ["simSeconds", "system.cpu.committedInsts"]

  parameter "bench"      { values = ["spmv"] }
  parameter "matrix"     { values = ["sx-superuser", "com-Amazon"] }
  parameter "prefetcher" { values = ["stride"] }
  parameter "degree"     { values = [2, 4, 6, 8] }

  pivot "sim_seconds" {
    index   = "matrix"
    columns = "degree"
    values  = "simSeconds"
  }

  source "s3" {
    bucket = "gem5-results"
    prefix = "sweeps/2024"
  }

  export "csv" { path = "out/records.csv" }
  export "sqlite" { path = "out/results.db" }
}
`)

	// --- Act ---
	cfg, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, cfg.Studies, 1)
	s := cfg.Studies[0]

	require.Equal(t, "degree_sweep", s.Name)
	require.Equal(t, path, s.FilePath)
	require.Equal(t, "stats.txt", s.StatsFile)
	require.Equal(t, []string{"simSeconds", "system.cpu.committedInsts"}, s.Metrics)
	require.Equal(t, "${bench}_${matrix}/${prefetcher}_DG${degree}_m5out", s.PathTemplate.String())

	wantSpace := model.Space{
		{Name: "bench", Values: []string{"spmv"}},
		{Name: "matrix", Values: []string{"sx-superuser", "com-Amazon"}},
		{Name: "prefetcher", Values: []string{"stride"}},
		{Name: "degree", Values: []string{"2", "4", "6", "8"}},
	}
	if diff := cmp.Diff(wantSpace, s.Space); diff != "" {
		t.Fatalf("space mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []config.Pivot{{Name: "sim_seconds", Spec: pivot.Spec{Index: "matrix", Columns: "degree", Values: "simSeconds"}}}, s.Pivots)
	require.Equal(t, config.SourceSpec{Kind: "s3", Options: config.Options{"bucket": "gem5-results", "prefix": "sweeps/2024"}}, s.Source)
	require.Equal(t, []config.ExportSpec{
		{Kind: "csv", Options: config.Options{"path": "out/records.csv"}},
		{Kind: "sqlite", Options: config.Options{"path": "out/results.db"}},
	}, s.Exports)

	rendered, err := s.PathTemplate.Render(model.NewRecord("bench", "spmv", "matrix", "com-Amazon", "prefetcher", "stride", "degree", "4"))
	require.NoError(t, err)
	require.Equal(t, "spmv_com-Amazon/stride_DG4_m5out", rendered)
	require.NoError(t, config.Validate(s))
}

func TestLoad_DefaultsAndFunctions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `
study "threads" {
  path_template = "TH${threads}"
  metrics       = ["simSeconds"]
  parameter "threads" { values = range(4, 17, 4) }
  parameter "ratio"   { values = concat([0.5], [true]) }
}
`)

	cfg, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	s := cfg.Studies[0]
	require.Equal(t, "", s.StatsFile)
	require.Equal(t, config.DefaultSourceKind, s.Source.Kind)
	require.Empty(t, s.Exports)
	require.Equal(t, []string{"4", "8", "12", "16"}, s.Space[0].Values)
	require.Equal(t, []string{"0.5", "true"}, s.Space[1].Values)
}

func TestLoad_EnvInOptions(t *testing.T) {
	t.Setenv("STATGRID_TEST_BUCKET", "nightly-results")
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `
study "remote" {
  path_template = "${x}"
  metrics       = ["m"]
  parameter "x" { values = ["1"] }
  source "s3" { bucket = env.STATGRID_TEST_BUCKET }
}
`)

	cfg, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.Equal(t, "nightly-results", cfg.Studies[0].Source.Options["bucket"])
}

func TestEnvObject(t *testing.T) {
	v := envObject([]string{"A=1", "B=x=y", "broken", "=skipped"})

	require.Equal(t, "1", v.GetAttr("A").AsString())
	require.Equal(t, "x=y", v.GetAttr("B").AsString())
	require.False(t, v.Type().HasAttribute("broken"))
	require.True(t, envObject(nil).RawEquals(cty.EmptyObjectVal))
}

func TestLoad_MultipleFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.hcl", `study "a" {
  path_template = "x"
  metrics = ["m"]
}`)
	writeFile(t, dir, "nested/two.hcl", `study "b" {
  path_template = "y"
  metrics = ["m"]
}`)
	writeFile(t, dir, "ignored.txt", `not hcl`)

	cfg, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, cfg.Studies, 2)
	require.NotNil(t, cfg.Study("a"))
	require.NotNil(t, cfg.Study("b"))
}

func TestLoad_MissingTemplateLeftForValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `study "a" { metrics = ["m"] }`)

	cfg, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.Nil(t, cfg.Studies[0].PathTemplate)
	require.ErrorContains(t, config.Validate(cfg.Studies[0]), "path_template is required")
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "syntax error",
			content: `study "a" {`,
			want:    "failed to parse HCL file",
		},
		{
			name:    "missing required attribute",
			content: `study "a" { path_template = "x" }`,
			want:    "failed to decode HCL file",
		},
		{
			name: "values not a list",
			content: `study "a" {
  path_template = "x"
  metrics = ["m"]
  parameter "p" { values = "single" }
}`,
			want: "values must be a list",
		},
		{
			name: "nested values",
			content: `study "a" {
  path_template = "x"
  metrics = ["m"]
  parameter "p" { values = [[1]] }
}`,
			want: "expected a string, number or bool",
		},
		{
			name: "null value",
			content: `study "a" {
  path_template = "x"
  metrics = ["m"]
  parameter "p" { values = [null] }
}`,
			want: "null value is not allowed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.hcl", tc.content)

			_, err := NewLoader().Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}
