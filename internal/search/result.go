package search

import (
	"time"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Evaluate runs the full query semantics over a candidate set: one pass for
// matching and facet counting, then ordering and the page window. Pagination
// totals always describe the whole matched set, not the returned page.
func Evaluate(candidates []types.CanonicalJob, f *types.SearchFilter, now time.Time) types.SearchResult {
	facets := types.NewFacets()
	matched := make([]types.CanonicalJob, 0, len(candidates))
	for i := range candidates {
		if Matches(&candidates[i], f, now) {
			facets.Add(&candidates[i])
			matched = append(matched, candidates[i])
		}
	}

	Sort(matched, f.SortBy)

	page := Page(len(matched), f.Page, f.Limit)
	start, end := PageWindow(len(matched), f.Page, f.Limit)

	return types.SearchResult{
		Jobs:       matched[start:end],
		Pagination: page,
		Facets:     facets,
	}
}

// Page computes pagination metadata for a matched-set size.
func Page(total, page, limit int) types.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return types.Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && total > 0,
	}
}

// PageWindow returns the [start, end) slice bounds of a 1-indexed page.
func PageWindow(total, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start >= total {
		return total, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
