package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinDocumentLength is the smallest HTTP document considered a real result
// page. Anything shorter is treated as a JavaScript shell and re-fetched
// through the headless browser.
const MinDocumentLength = 2048

// ShouldRender reports whether the plain-HTTP document looks like an
// unrendered SPA shell.
func ShouldRender(html string) bool {
	return len(strings.TrimSpace(html)) < MinDocumentLength
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func renderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to paint the result list.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
