// Package scrape retrieves and extracts raw listings from configured job
// boards. One generic fetch/extract routine serves every source; behavior
// differences live in the SourceConfig data.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/types"
)

// UserAgent identifies the crawler to third-party boards, as required by
// their terms. Every outbound request carries it.
const UserAgent = "CareerHubBot/1.0 (+https://careerhub.example.com/bot)"

// Error wraps a fetch failure with the URL and source it happened on.
type Error struct {
	Source  string
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s (%s): %s: %v", e.URL, e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s (%s): %s", e.URL, e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fetcher retrieves search result documents. It enforces the per-source
// minimum spacing between requests and a bounded timeout per request.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger

	// renderer is swapped out in tests; production uses chromedp.
	renderer renderFunc

	mu      sync.Mutex
	lastHit map[string]time.Time
	sleepFn func(time.Duration)
}

type renderFunc func(ctx context.Context, url string, timeout time.Duration) (string, error)

// NewFetcher constructs a Fetcher with a shared HTTP client. The timeout
// applies per request.
func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:  timeout,
		logger:   logger,
		renderer: renderWithBrowser,
		lastHit:  make(map[string]time.Time),
		sleepFn:  time.Sleep,
	}
}

// SearchURL builds the search page URL for a keyword and 1-indexed page.
func SearchURL(src types.SourceConfig, keyword string, page int) string {
	path := fmt.Sprintf(src.SearchPath, url.QueryEscape(keyword))
	full := strings.TrimRight(src.BaseURL, "/") + path
	if page > 1 {
		sep := "?"
		if strings.Contains(full, "?") {
			sep = "&"
		}
		full += fmt.Sprintf("%spage=%d", sep, page)
	}
	return full
}

// FetchPage retrieves one search result document for (source, keyword,
// page). It waits out the source's minimum inter-request delay first, so
// callers can loop without their own pacing.
func (f *Fetcher) FetchPage(ctx context.Context, src types.SourceConfig, keyword string, page int) (string, error) {
	f.waitTurn(src)

	pageURL := SearchURL(src, keyword, page)

	if src.RequiresBrowser {
		return f.render(ctx, src, pageURL)
	}

	html, err := f.get(ctx, src, pageURL)
	if err != nil {
		return "", err
	}

	// Script-heavy boards serve a near-empty shell over plain HTTP; fall
	// back to a rendered fetch when the document is suspiciously small.
	if ShouldRender(html) {
		rendered, rerr := f.render(ctx, src, pageURL)
		if rerr != nil {
			f.logger.Debug("browser fallback failed, using HTTP document",
				zap.String("source", src.Name),
				zap.Error(rerr),
			)
			return html, nil
		}
		return rendered, nil
	}

	return html, nil
}

func (f *Fetcher) get(ctx context.Context, src types.SourceConfig, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &Error{Source: src.Name, URL: pageURL, Message: "create request", Cause: err}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &Error{Source: src.Name, URL: pageURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{
			Source:  src.Name,
			URL:     pageURL,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: src.Name, URL: pageURL, Message: "read body", Cause: err}
	}

	return string(body), nil
}

func (f *Fetcher) render(ctx context.Context, src types.SourceConfig, pageURL string) (string, error) {
	html, err := f.renderer(ctx, pageURL, f.timeout)
	if err != nil {
		return "", &Error{Source: src.Name, URL: pageURL, Message: "browser render", Cause: err}
	}
	return html, nil
}

// waitTurn blocks until the source's inter-request delay has elapsed since
// the previous request to it. Delays are tracked per source, so parallel
// ingestion of different sources never throttles on each other.
func (f *Fetcher) waitTurn(src types.SourceConfig) {
	delay := src.RequestDelay()
	if delay <= 0 {
		return
	}

	f.mu.Lock()
	last, seen := f.lastHit[src.Name]
	now := time.Now()
	var wait time.Duration
	if seen {
		if elapsed := now.Sub(last); elapsed < delay {
			wait = delay - elapsed
		}
	}
	f.lastHit[src.Name] = now.Add(wait)
	f.mu.Unlock()

	if wait > 0 {
		f.sleepFn(wait)
	}
}
