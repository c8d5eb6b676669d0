package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansijobs/careerhub/internal/types"
)

func testSource() types.SourceConfig {
	return types.SourceConfig{
		Name:    "testboard",
		BaseURL: "https://jobs.example.co.za",
		Selectors: map[string]string{
			types.SelListing:     "div.job-card",
			types.SelTitle:       "h2.title",
			types.SelCompany:     "span.company",
			types.SelLocation:    "span.location",
			types.SelSalary:      "span.salary",
			types.SelDate:        "span.date",
			types.SelLink:        "a.detail",
			types.SelDescription: "p.summary",
		},
		ExternalIDPattern: `/vacancy/(\d+)`,
	}
}

const sampleDoc = `
<html><body>
  <div class="job-card">
    <h2 class="title">Senior Go Developer</h2>
    <span class="company">Acme Corp</span>
    <span class="location">Cape Town, South Africa</span>
    <span class="salary">R60 000 - R80 000 per month</span>
    <span class="date">3 days ago</span>
    <a class="detail" href="/vacancy/12345">View</a>
    <p class="summary">Build backend services in Go and Kubernetes.</p>
  </div>
  <div class="job-card">
    <h2 class="title">Accountant</h2>
    <span class="company">Beta Ltd</span>
    <a class="detail" href="https://jobs.example.co.za/vacancy/67890">View</a>
    <p class="summary">Full-function accounting with Sage Pastel.</p>
  </div>
</body></html>`

func TestExtract_ParsesCards(t *testing.T) {
	listings, dropped, err := Extract(sampleDoc, testSource())
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "Senior Go Developer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Cape Town, South Africa", first.Location)
	assert.Equal(t, "R60 000 - R80 000 per month", first.SalaryText)
	assert.Equal(t, "3 days ago", first.DateText)
	assert.Equal(t, "https://jobs.example.co.za/vacancy/12345", first.DetailURL)
	assert.Equal(t, "12345", first.ExternalID)
	assert.Equal(t, "testboard", first.Source)

	second := listings[1]
	assert.Equal(t, "Accountant", second.Title)
	assert.Empty(t, second.Location)
	assert.Equal(t, "67890", second.ExternalID)
}

func TestExtract_DropsMalformedCards(t *testing.T) {
	doc := `
<html><body>
  <div class="job-card">
    <h2 class="title">Jr</h2>
    <span class="company">Acme Corp</span>
    <a class="detail" href="/vacancy/1">View</a>
    <p class="summary">Title below the minimum length.</p>
  </div>
  <div class="job-card">
    <h2 class="title">Developer</h2>
    <span class="company">A</span>
    <a class="detail" href="/vacancy/2">View</a>
    <p class="summary">Company below the minimum length.</p>
  </div>
  <div class="job-card">
    <h2 class="title">Developer</h2>
    <span class="company">Acme Corp</span>
    <p class="summary">No detail link at all.</p>
  </div>
  <div class="job-card">
    <h2 class="title">Data Analyst</h2>
    <span class="company">Gamma Inc</span>
    <a class="detail" href="/vacancy/4">View</a>
    <p class="summary">Analyze datasets with SQL and Excel.</p>
  </div>
</body></html>`

	listings, dropped, err := Extract(doc, testSource())
	require.NoError(t, err)
	assert.Equal(t, 3, dropped)
	require.Len(t, listings, 1)
	assert.Equal(t, "Data Analyst", listings[0].Title)
}

func TestExtract_ExternalIDFallsBackToURLSuffix(t *testing.T) {
	src := testSource()
	src.ExternalIDPattern = ""

	doc := `
<html><body>
  <div class="job-card">
    <h2 class="title">Developer</h2>
    <span class="company">Acme Corp</span>
    <a class="detail" href="/jobs/software-developer-gauteng/">View</a>
    <p class="summary">Write software for clients.</p>
  </div>
</body></html>`

	listings, dropped, err := Extract(doc, src)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, listings, 1)

	// Last 16 characters of the detail URL, trailing slash trimmed.
	url := "https://jobs.example.co.za/jobs/software-developer-gauteng"
	assert.Equal(t, url[len(url)-16:], listings[0].ExternalID)
}

func TestExtract_MissingDescriptionSelectorFallsBackToTitle(t *testing.T) {
	src := testSource()
	delete(src.Selectors, types.SelDescription)

	doc := `
<html><body>
  <div class="job-card">
    <h2 class="title">Warehouse Supervisor</h2>
    <span class="company">Acme Corp</span>
    <a class="detail" href="/vacancy/99">View</a>
  </div>
</body></html>`

	listings, dropped, err := Extract(doc, src)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, listings, 1)
	assert.Equal(t, "Warehouse Supervisor", listings[0].Description)
}

func TestExtract_EmptyDocument(t *testing.T) {
	listings, dropped, err := Extract("<html><body></body></html>", testSource())
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Empty(t, listings)
}

func TestShouldRender(t *testing.T) {
	assert.True(t, ShouldRender("<html></html>"))
	assert.False(t, ShouldRender(strings.Repeat("a", MinDocumentLength)))
}

func TestSearchURL(t *testing.T) {
	src := types.SourceConfig{
		BaseURL:    "https://jobs.example.co.za/",
		SearchPath: "/search?q=%s",
	}

	assert.Equal(t, "https://jobs.example.co.za/search?q=go+developer", SearchURL(src, "go developer", 1))
	assert.Equal(t, "https://jobs.example.co.za/search?q=go+developer&page=3", SearchURL(src, "go developer", 3))
}
