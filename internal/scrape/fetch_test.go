package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/types"
)

func fullPage(marker string) string {
	return "<html><body>" + marker + strings.Repeat("x", MinDocumentLength) + "</body></html>"
}

func serverSource(ts *httptest.Server) types.SourceConfig {
	return types.SourceConfig{
		Name:       "testboard",
		BaseURL:    ts.URL,
		SearchPath: "/search?q=%s",
	}
}

func TestFetcher_FetchPage(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(fullPage("results")))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())

	html, err := f.FetchPage(context.Background(), serverSource(ts), "developer", 1)
	require.NoError(t, err)
	assert.Contains(t, html, "results")
	assert.Equal(t, UserAgent, gotUA)
}

func TestFetcher_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())

	_, err := f.FetchPage(context.Background(), serverSource(ts), "developer", 1)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "testboard", fe.Source)
}

func TestFetcher_SmallDocumentFallsBackToRenderer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>shell</body></html>"))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())
	f.renderer = func(_ context.Context, _ string, _ time.Duration) (string, error) {
		return fullPage("rendered"), nil
	}

	html, err := f.FetchPage(context.Background(), serverSource(ts), "developer", 1)
	require.NoError(t, err)
	assert.Contains(t, html, "rendered")
}

func TestFetcher_FailedFallbackKeepsHTTPDocument(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>shell</body></html>"))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())
	f.renderer = func(_ context.Context, _ string, _ time.Duration) (string, error) {
		return "", assert.AnError
	}

	html, err := f.FetchPage(context.Background(), serverSource(ts), "developer", 1)
	require.NoError(t, err)
	assert.Contains(t, html, "shell")
}

func TestFetcher_RequiresBrowserSkipsHTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("plain HTTP fetch should not be used for browser-only sources")
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())
	f.renderer = func(_ context.Context, _ string, _ time.Duration) (string, error) {
		return fullPage("rendered"), nil
	}

	src := serverSource(ts)
	src.RequiresBrowser = true

	html, err := f.FetchPage(context.Background(), src, "developer", 1)
	require.NoError(t, err)
	assert.Contains(t, html, "rendered")
}

func TestFetcher_WaitTurnSpacesRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fullPage("results")))
	}))
	defer ts.Close()

	f := NewFetcher(5*time.Second, zap.NewNop())
	var slept []time.Duration
	f.sleepFn = func(d time.Duration) { slept = append(slept, d) }

	src := serverSource(ts)
	src.RequestDelayMS = 2000

	_, err := f.FetchPage(context.Background(), src, "developer", 1)
	require.NoError(t, err)
	assert.Empty(t, slept, "first request needs no spacing")

	_, err = f.FetchPage(context.Background(), src, "developer", 2)
	require.NoError(t, err)
	require.Len(t, slept, 1)
	assert.Greater(t, slept[0], time.Duration(0))
	assert.LessOrEqual(t, slept[0], 2*time.Second)
}
