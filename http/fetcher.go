// Package http provides the HTTP-based implementation of
// lexique.Fetcher. Both remote sources (CRISCO and CNRTL) are static
// sites, so plain requests without JavaScript rendering are
// sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/avernet/lexique"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements lexique.Fetcher at compile time.
var _ lexique.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP and decodes their bodies to UTF-8.
// An optional rate limiter keeps request pressure on the remote
// dictionary sites polite.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with
// a burst of 1. No limit is applied if this option is omitted.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at rawurl. The call blocks until the
// response completes or the client times out; no retries are
// performed. Transport failures, non-2xx statuses and undecodable
// bodies are all surfaced as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string) (*lexique.RawPage, error) {
	if _, err := url.Parse(rawurl); err != nil {
		return nil, lexique.Errorf(lexique.EINVALID, "invalid url %q: %v", rawurl, err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, lexique.Errorf(lexique.EUNAVAILABLE, "fetch %s: %v", rawurl, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, lexique.Errorf(lexique.EINVALID, "invalid request for %q: %v", rawurl, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "fetch %s: %v", rawurl, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "fetch %s: HTTP %d", rawurl, resp.StatusCode)
	}

	// Decode to UTF-8 before extraction sees the body. CNRTL serves
	// UTF-8 but CRISCO pages have historically declared ISO-8859-1.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "decode %s: %v", rawurl, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "read %s: %v", rawurl, err)
	}
	if !utf8.Valid(body) {
		return nil, lexique.Errorf(lexique.EUNAVAILABLE, "decode %s: body is not valid UTF-8", rawurl)
	}

	return &lexique.RawPage{URL: rawurl, Body: string(body)}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
