package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher retrieves the raw feed payload.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
	Name() string
}

// GvizFetcher fetches the spreadsheet feed over HTTP. The endpoint returns
// JSON wrapped in a callback-style envelope which the parser strips.
type GvizFetcher struct {
	URL    string
	Client *http.Client
}

// NewGvizFetcher creates a fetcher with optional proxy support.
func NewGvizFetcher(feedURL, proxyURL string) *GvizFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GvizFetcher{
		URL: feedURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *GvizFetcher) Name() string { return "gviz" }

func (f *GvizFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}
	return string(body), nil
}

// MockFetcher returns fixed data for development and testing.
type MockFetcher struct {
	Payload string
	Err     error
	Calls   int
	// Delay, when set, makes Fetch block so tests can hold a load in flight.
	Delay time.Duration
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(ctx context.Context) (string, error) {
	m.Calls++
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrFetch, ctx.Err())
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Payload, nil
}
