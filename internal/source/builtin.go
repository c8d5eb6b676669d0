package source

import "github.com/mzansijobs/careerhub/internal/types"

// builtinSources is the default board set. These are data, not code: a new
// board is a new entry here or in an override file, never a new code path.
var builtinSources = []types.SourceConfig{
	{
		Name:       "careers24",
		BaseURL:    "https://www.careers24.com",
		SearchPath: "/jobs/kw-%s",
		Selectors: map[string]string{
			types.SelListing:     "div.job-card",
			types.SelTitle:       "a.job-title",
			types.SelCompany:     "span.company-name",
			types.SelLocation:    "span.location",
			types.SelSalary:      "span.salary",
			types.SelDate:        "span.posted-date",
			types.SelLink:        "a.job-title",
			types.SelDescription: "p.job-snippet",
		},
		ExternalIDPattern: `/vacancy/(\d+)`,
		RequestDelayMS:    2000,
	},
	{
		Name:       "pnet",
		BaseURL:    "https://www.pnet.co.za",
		SearchPath: "/jobs?q=%s",
		Selectors: map[string]string{
			types.SelListing:     "article[data-testid='job-item']",
			types.SelTitle:       "h2 a",
			types.SelCompany:     "span[data-testid='company-name']",
			types.SelLocation:    "span[data-testid='job-location']",
			types.SelSalary:      "span[data-testid='salary']",
			types.SelDate:        "time",
			types.SelLink:        "h2 a",
			types.SelDescription: "div[data-testid='job-teaser']",
		},
		ExternalIDPattern: `--(\d+)-inline\.html`,
		RequestDelayMS:    2500,
	},
	{
		Name:       "indeed-za",
		BaseURL:    "https://za.indeed.com",
		SearchPath: "/jobs?q=%s",
		Selectors: map[string]string{
			types.SelListing:     "div.job_seen_beacon",
			types.SelTitle:       "h2.jobTitle span",
			types.SelCompany:     "span[data-testid='company-name']",
			types.SelLocation:    "div[data-testid='text-location']",
			types.SelSalary:      "div.salary-snippet-container",
			types.SelDate:        "span.date",
			types.SelLink:        "h2.jobTitle a",
			types.SelDescription: "div.job-snippet",
		},
		ExternalIDPattern: `jk=([0-9a-f]+)`,
		RequestDelayMS:    3000,
		RequiresBrowser:   true,
	},
	{
		Name:       "careerjunction",
		BaseURL:    "https://www.careerjunction.co.za",
		SearchPath: "/jobs/results?keywords=%s",
		Selectors: map[string]string{
			types.SelListing:     "div.module-content ul.jobs li",
			types.SelTitle:       "h2 a",
			types.SelCompany:     "ul.job-result-overview li.company",
			types.SelLocation:    "ul.job-result-overview li.location",
			types.SelSalary:      "ul.job-result-overview li.salary",
			types.SelDate:        "ul.job-result-overview li.updated-time",
			types.SelLink:        "h2 a",
			types.SelDescription: "div.job-result-snippet",
		},
		ExternalIDPattern: `/job/(\d+)`,
		RequestDelayMS:    2000,
	},
}
