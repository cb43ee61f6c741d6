package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchBytes performs one GET against url with a per-request timeout.
// A non-200 status is an error; callers decide whether to try another
// candidate endpoint.
func fetchBytes(ctx context.Context, client *http.Client, url, token, userAgent, accept string, timeout time.Duration) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}

// New builds the adapter for a source configuration.
func New(config *Config, client *http.Client, userAgent string) (Source, error) {
	switch config.Type {
	case TypeReader:
		return NewReaderSource(config, client, userAgent), nil
	case TypeTable:
		return NewTableSource(config, client, userAgent), nil
	case TypeRSS:
		return NewRSSSource(config, client, userAgent), nil
	default:
		return nil, fmt.Errorf("unknown source type: %q", config.Type)
	}
}
