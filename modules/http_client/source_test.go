package http_client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/source"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/runs/a_DG2/stats.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "simSeconds 0.25\n")
	})
	mux.HandleFunc("/runs/broken/stats.txt", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSource_Open(t *testing.T) {
	// --- Arrange ---
	srv := newTestServer(t)
	src, err := New(context.Background(), config.Options{"base_url": srv.URL + "/runs", "timeout": "5s"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.(*Source).Close() })

	// --- Act ---
	rc, err := src.Open(context.Background(), "a_DG2/stats.txt")

	// --- Assert ---
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "simSeconds 0.25\n", string(data))
}

func TestSource_NotFound(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewSource(srv.Client(), srv.URL+"/runs")
	require.NoError(t, err)

	_, err = src.Open(context.Background(), "missing/stats.txt")

	require.True(t, source.IsNotExist(err))
}

func TestSource_ServerErrorIsNotMissing(t *testing.T) {
	srv := newTestServer(t)
	src, err := NewSource(srv.Client(), srv.URL+"/runs")
	require.NoError(t, err)

	_, err = src.Open(context.Background(), "broken/stats.txt")

	require.Error(t, err)
	require.False(t, source.IsNotExist(err))
	require.Contains(t, err.Error(), "500")
}

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name string
		opts config.Options
	}{
		{name: "missing base_url", opts: config.Options{}},
		{name: "relative base_url", opts: config.Options{"base_url": "runs/"}},
		{name: "bad timeout", opts: config.Options{"base_url": "http://x", "timeout": "soon"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(context.Background(), tc.opts)
			require.Error(t, err)
		})
	}
}
