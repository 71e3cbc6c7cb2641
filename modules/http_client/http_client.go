package http_client

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single results file download.
const DefaultTimeout = 30 * time.Second

// newHttpClient builds the pooled client shared by every read of one source.
// An empty timeout means DefaultTimeout.
func newHttpClient(timeout string) (*http.Client, error) {
	d := DefaultTimeout
	if timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
		}
		d = parsed
	}

	return &http.Client{
		Timeout: d,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}, nil
}
