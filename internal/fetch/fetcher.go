// Package fetch retrieves feed lists, feeds, and article documents
// over HTTP or from the local filesystem.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"newsagg/internal/config"
	"newsagg/pkg/urlutil"
	"newsagg/pkg/utils"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// Fetcher retrieves documents. Locations with an http(s) scheme are
// fetched over the network; anything else is read as a local file
// path. Each location is fetched exactly once: failures are the
// caller's to log and drop, never retried.
type Fetcher struct {
	client       *http.Client
	headers      *utils.HTTPHelper
	bufferSizeKb int
}

// NewFetcher creates a fetcher from the fetch configuration.
func NewFetcher(cfg *config.FetchConfig) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		headers:      utils.NewHTTPHelper(cfg.UserAgent),
		bufferSizeKb: cfg.BufferSizeKb,
	}
}

// Fetch returns the contents of the given location, capped at the
// configured buffer size.
func (f *Fetcher) Fetch(location string) (string, error) {
	if urlutil.IsRemote(location) {
		return f.fetchRemote(location)
	}

	return f.readLocalFile(location)
}

func (f *Fetcher) fetchRemote(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = f.headers.BuildHeaders(nil)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// bufferSizeKb is in KB, convert to bytes
	limit := int64(f.bufferSizeKb) * 1024
	reader := io.LimitReader(resp.Body, limit)

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (f *Fetcher) readLocalFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read local file: %w", err)
	}

	limit := int64(f.bufferSizeKb) * 1024
	if int64(len(data)) > limit {
		data = data[:limit]
	}

	return string(data), nil
}
