// Package feed retrieves and parses syndication feed documents.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"news-api/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Fetcher downloads raw feed documents over HTTP.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw response body for url. Transport failures, timeouts
// and non-2xx statuses all surface as domain.ErrFeedFetch; the caller treats
// them as fatal for the source's run.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %v", domain.ErrFeedFetch, url, err)
	}
	req.Header.Set("User-Agent", "news-api/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: unexpected status %d from %s", domain.ErrFeedFetch, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFeedFetch, err)
	}

	return string(body), nil
}
