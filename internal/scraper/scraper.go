package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/bin-days/internal/schedule"
)

const (
	UserAgent      = "Mozilla/5.0"
	DefaultTimeout = 12 * time.Second
)

// Fetcher retrieves schedule pages over HTTP
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithClient replaces the HTTP client. The client's own timeout applies.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// New creates a new Fetcher
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues a single GET to url and parses the response body.
// Any non-2xx response is an error; nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (schedule.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindRequest, URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{
			Kind:       KindStatus,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("http status %d", resp.StatusCode),
		}
	}

	doc, err := Parse(resp.Body)
	if err != nil {
		return nil, classifyParseError(url, err)
	}
	return doc, nil
}

// Parse reads an HTML page into a schedule.Document.
func Parse(r io.Reader) (schedule.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &page{doc: doc}, nil
}
