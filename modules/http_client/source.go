package http_client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/source"
)

// Source reads results files over HTTP, relative to a base URL.
type Source struct {
	client  *http.Client
	baseURL *url.URL
}

// NewSource creates a Source. The base URL must be absolute.
func NewSource(client *http.Client, baseURL string) (*Source, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url %q: %w", baseURL, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("base_url %q must be absolute", baseURL)
	}
	return &Source{client: client, baseURL: u}, nil
}

// Open implements source.Source. A 404 or 410 response means the file does
// not exist; any other non-2xx status is an error.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	target := s.baseURL.JoinPath(strings.TrimPrefix(name, "/")).String()
	logger := ctxlog.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	logger.Debug("Received HTTP response.", "url", target, "status", resp.Status)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		drain(logger, resp.Body)
		return nil, source.NotExist(target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		drain(logger, resp.Body)
		return nil, fmt.Errorf("GET %s: unexpected status %s", target, resp.Status)
	}
	return resp.Body, nil
}

// Close releases idle connections held by the client.
func (s *Source) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// String implements source.Source.
func (s *Source) String() string {
	return s.baseURL.String()
}

func drain(logger *slog.Logger, body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		logger.Debug("Failed to close response body.", "error", err)
	}
}
