package scrape

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Minimum-quality thresholds; candidates below them are dropped.
const (
	minTitleLen       = 3
	minCompanyLen     = 2
	minDescriptionLen = 10
)

// externalIDSuffixLen is the fallback id length taken from the end of the
// detail URL when the source's pattern does not match.
const externalIDSuffixLen = 16

// Extract parses a search result document with the source's selector map and
// returns the extracted candidates. Malformed candidates (missing required
// fields or below the quality thresholds) are silently discarded; the
// returned dropped count lets the pipeline log them.
func Extract(html string, src types.SourceConfig) (listings []types.RawListing, dropped int, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, 0, &Error{Source: src.Name, Message: "parse document", Cause: err}
	}

	base, err := url.Parse(src.BaseURL)
	if err != nil {
		return nil, 0, &Error{Source: src.Name, Message: "parse base URL", Cause: err}
	}

	var idPattern *regexp.Regexp
	if src.ExternalIDPattern != "" {
		// An invalid pattern disables pattern extraction but not the run;
		// the suffix fallback still produces usable ids.
		idPattern, _ = regexp.Compile(src.ExternalIDPattern)
	}

	doc.Find(src.Selectors[types.SelListing]).Each(func(_ int, card *goquery.Selection) {
		raw, ok := extractCard(card, src, base, idPattern)
		if !ok {
			dropped++
			return
		}
		listings = append(listings, raw)
	})

	return listings, dropped, nil
}

func extractCard(card *goquery.Selection, src types.SourceConfig, base *url.URL, idPattern *regexp.Regexp) (types.RawListing, bool) {
	var raw types.RawListing
	raw.Source = src.Name

	raw.Title = fieldText(card, src, types.SelTitle)
	raw.Company = fieldText(card, src, types.SelCompany)
	raw.DetailURL = fieldLink(card, src, base)

	// Required fields: no title, company or detail link means no candidate.
	if raw.Title == "" || raw.Company == "" || raw.DetailURL == "" {
		return raw, false
	}

	raw.Location = fieldText(card, src, types.SelLocation)
	raw.SalaryText = fieldText(card, src, types.SelSalary)
	raw.DateText = fieldText(card, src, types.SelDate)
	raw.Description = fieldText(card, src, types.SelDescription)

	// Sources without a description selector only expose the title; use it
	// so the quality gate below measures real content, not config gaps.
	if _, hasSel := src.Selectors[types.SelDescription]; !hasSel && raw.Description == "" {
		raw.Description = raw.Title
	}

	if len(raw.Title) < minTitleLen ||
		len(raw.Company) < minCompanyLen ||
		len(raw.Description) < minDescriptionLen {
		return raw, false
	}

	raw.ExternalID = deriveExternalID(raw.DetailURL, idPattern)

	return raw, true
}

func fieldText(card *goquery.Selection, src types.SourceConfig, field string) string {
	sel, ok := src.Selectors[field]
	if !ok || sel == "" {
		return ""
	}
	return strings.TrimSpace(card.Find(sel).First().Text())
}

// fieldLink reads the link selector's href and resolves it against the
// source's base URL so relative detail links come out absolute.
func fieldLink(card *goquery.Selection, src types.SourceConfig, base *url.URL) string {
	sel, ok := src.Selectors[types.SelLink]
	if !ok || sel == "" {
		return ""
	}
	href, exists := card.Find(sel).First().Attr("href")
	if !exists || href == "" {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// deriveExternalID extracts the board's own listing id from the detail URL,
// falling back to a fixed-length suffix of the URL when the pattern misses.
func deriveExternalID(detailURL string, idPattern *regexp.Regexp) string {
	if idPattern != nil {
		if m := idPattern.FindStringSubmatch(detailURL); len(m) >= 2 {
			return m[1]
		}
	}
	trimmed := strings.TrimRight(detailURL, "/")
	if len(trimmed) <= externalIDSuffixLen {
		return trimmed
	}
	return trimmed[len(trimmed)-externalIDSuffixLen:]
}
