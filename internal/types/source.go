package types

import "time"

// SourceConfig describes one external job board. Sources are plain data
// processed by the generic fetch/extract routine; adding a board means adding
// a config entry, not code.
type SourceConfig struct {
	// Name identifies the source and scopes external IDs.
	Name string `json:"name"`
	// BaseURL is the origin used to resolve relative detail links.
	BaseURL string `json:"base_url"`
	// SearchPath is a path template with %s for the URL-escaped keyword.
	SearchPath string `json:"search_path"`
	// Selectors maps logical fields to CSS selectors. The "listing" selector
	// scopes one result card; the rest are read relative to it.
	Selectors map[string]string `json:"selectors"`
	// ExternalIDPattern is a regexp whose first capture group extracts the
	// board's own listing id from a detail URL.
	ExternalIDPattern string `json:"external_id_pattern,omitempty"`
	// RequestDelayMS is the minimum spacing between requests to this source.
	RequestDelayMS int `json:"request_delay_ms"`
	// RequiresBrowser marks boards that render listings with JavaScript.
	RequiresBrowser bool `json:"requires_browser,omitempty"`
}

// RequestDelay returns the configured inter-request delay.
func (s *SourceConfig) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelayMS) * time.Millisecond
}

// Selector field names recognized in SourceConfig.Selectors.
const (
	SelListing     = "listing"
	SelTitle       = "title"
	SelCompany     = "company"
	SelLocation    = "location"
	SelSalary      = "salary"
	SelDate        = "date"
	SelLink        = "link"
	SelDescription = "description"
)

// RawListing is the ephemeral result of extracting one listing card. It is
// never persisted; the normalizer and upserter turn it into a CanonicalJob.
type RawListing struct {
	Title       string
	Company     string
	Location    string
	SalaryText  string
	DateText    string
	Description string
	DetailURL   string
	Source      string
	ExternalID  string
}

// IngestStats accumulates the outcome of one ingestion run. Per-item failures
// are counted here instead of aborting the run.
type IngestStats struct {
	Total      int            `json:"total"`
	Processed  int            `json:"processed"`
	Duplicates int            `json:"duplicates"`
	Errors     int            `json:"errors"`
	BySource   map[string]int `json:"by_source,omitempty"`
}

// Merge folds another run's counters into s.
func (s *IngestStats) Merge(other IngestStats) {
	s.Total += other.Total
	s.Processed += other.Processed
	s.Duplicates += other.Duplicates
	s.Errors += other.Errors
	for k, v := range other.BySource {
		if s.BySource == nil {
			s.BySource = make(map[string]int)
		}
		s.BySource[k] += v
	}
}
