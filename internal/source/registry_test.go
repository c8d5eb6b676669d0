package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansijobs/careerhub/internal/types"
)

func writeSources(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSources = `[
  {
    "name": "testboard",
    "base_url": "https://jobs.example.co.za",
    "search_path": "/search?q=%s",
    "selectors": {
      "listing": "div.card",
      "title": "h2",
      "company": "span.co",
      "link": "a"
    },
    "request_delay_ms": 1500
  }
]`

func TestDefault_BuiltinSources(t *testing.T) {
	reg := Default()

	require.GreaterOrEqual(t, reg.Len(), 4)
	for _, s := range reg.List() {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.BaseURL)
		assert.Contains(t, s.SearchPath, "%s")
		for _, field := range []string{types.SelListing, types.SelTitle, types.SelCompany, types.SelLink} {
			assert.NotEmpty(t, s.Selectors[field], "source %s missing %s selector", s.Name, field)
		}
		assert.Positive(t, s.RequestDelayMS, "source %s must pace requests", s.Name)
	}
}

func TestDefault_ListIsSorted(t *testing.T) {
	list := Default().List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestLoadFile_Valid(t *testing.T) {
	reg, err := LoadFile(writeSources(t, validSources))
	require.NoError(t, err)

	require.Equal(t, 1, reg.Len())
	src, ok := reg.Get("testboard")
	require.True(t, ok)
	assert.Equal(t, "https://jobs.example.co.za", src.BaseURL)
	assert.Equal(t, 1500, src.RequestDelayMS)
}

func TestLoadFile_RejectsMissingRequiredSelector(t *testing.T) {
	content := `[
  {
    "name": "broken",
    "base_url": "https://jobs.example.co.za",
    "search_path": "/search?q=%s",
    "selectors": {"listing": "div.card", "title": "h2", "link": "a"},
    "request_delay_ms": 1000
  }
]`
	_, err := LoadFile(writeSources(t, content))
	assert.Error(t, err)
}

func TestLoadFile_RejectsUnknownFields(t *testing.T) {
	content := `[
  {
    "name": "broken",
    "base_url": "https://jobs.example.co.za",
    "search_path": "/search?q=%s",
    "selectors": {"listing": "div.card", "title": "h2", "company": "span", "link": "a"},
    "request_delay_ms": 1000,
    "retries": 3
  }
]`
	_, err := LoadFile(writeSources(t, content))
	assert.Error(t, err)
}

func TestLoadFile_RejectsBadBaseURL(t *testing.T) {
	content := `[
  {
    "name": "broken",
    "base_url": "ftp://jobs.example.co.za",
    "search_path": "/search?q=%s",
    "selectors": {"listing": "div.card", "title": "h2", "company": "span", "link": "a"},
    "request_delay_ms": 1000
  }
]`
	_, err := LoadFile(writeSources(t, content))
	assert.Error(t, err)
}

func TestLoadFile_RejectsDuplicateNames(t *testing.T) {
	content := `[
  {
    "name": "dup",
    "base_url": "https://a.example",
    "search_path": "/s?q=%s",
    "selectors": {"listing": "div", "title": "h2", "company": "span", "link": "a"},
    "request_delay_ms": 1000
  },
  {
    "name": "dup",
    "base_url": "https://b.example",
    "search_path": "/s?q=%s",
    "selectors": {"listing": "div", "title": "h2", "company": "span", "link": "a"},
    "request_delay_ms": 1000
  }
]`
	_, err := LoadFile(writeSources(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
