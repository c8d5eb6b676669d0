package search

import (
	"sort"
	"strings"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Sort orders jobs by the given key. Every key is a total order: ties fall
// through to published date descending, then id, so pagination windows never
// shift between calls.
func Sort(jobs []types.CanonicalJob, key types.SortKey) {
	var less func(a, b *types.CanonicalJob) int

	switch key {
	case types.SortDate:
		less = func(a, b *types.CanonicalJob) int { return 0 }
	case types.SortSalaryAsc:
		less = compareSalary(false)
	case types.SortSalaryDesc:
		less = compareSalary(true)
	case types.SortCompany:
		less = compareFold(func(j *types.CanonicalJob) string { return j.CompanyName })
	case types.SortTitle:
		less = compareFold(func(j *types.CanonicalJob) string { return j.Title })
	default: // relevance
		less = compareRelevance
	}

	sort.SliceStable(jobs, func(i, k int) bool {
		a, b := &jobs[i], &jobs[k]
		if c := less(a, b); c != 0 {
			return c < 0
		}
		// Final tie-breaks shared by every key.
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// compareRelevance orders by featured desc, urgent desc, views desc; the
// shared published-desc tie-break completes the ordering.
func compareRelevance(a, b *types.CanonicalJob) int {
	if a.Featured != b.Featured {
		if a.Featured {
			return -1
		}
		return 1
	}
	if a.Urgent != b.Urgent {
		if a.Urgent {
			return -1
		}
		return 1
	}
	switch {
	case a.ViewCount > b.ViewCount:
		return -1
	case a.ViewCount < b.ViewCount:
		return 1
	}
	return 0
}

// compareSalary orders by the job's advertised maximum (falling back to the
// minimum). Jobs without salary sort last in both directions.
func compareSalary(desc bool) func(a, b *types.CanonicalJob) int {
	return func(a, b *types.CanonicalJob) int {
		av, aok := salaryKey(a)
		bv, bok := salaryKey(b)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		case av == bv:
			return 0
		}
		if (av < bv) != desc {
			return -1
		}
		return 1
	}
}

func salaryKey(j *types.CanonicalJob) (int, bool) {
	if j.Salary.Max != nil {
		return *j.Salary.Max, true
	}
	if j.Salary.Min != nil {
		return *j.Salary.Min, true
	}
	return 0, false
}

func compareFold(field func(*types.CanonicalJob) string) func(a, b *types.CanonicalJob) int {
	return func(a, b *types.CanonicalJob) int {
		av, bv := strings.ToLower(field(a)), strings.ToLower(field(b))
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	}
}
