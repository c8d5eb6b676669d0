package search

import (
	"strings"
	"time"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Matches reports whether a job satisfies every supplied predicate of the
// filter. Predicates AND-combine; zero-value fields impose no constraint.
func Matches(j *types.CanonicalJob, f *types.SearchFilter, now time.Time) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.Province != "" && j.Location.Province != f.Province {
		return false
	}
	if f.City != "" && !strings.EqualFold(j.Location.City, f.City) {
		return false
	}
	if f.RemoteOnly && !j.Location.IsRemote {
		return false
	}
	if f.FeaturedOnly && !j.Featured {
		return false
	}
	if f.UrgentOnly && !j.Urgent {
		return false
	}
	if f.CompanyID != nil && j.CompanyID != *f.CompanyID {
		return false
	}
	if f.Industry != "" && !strings.EqualFold(j.Industry, f.Industry) {
		return false
	}
	if len(f.JobTypes) > 0 && !containsJobType(f.JobTypes, j.JobType) {
		return false
	}
	if len(f.ExperienceLevels) > 0 && !containsLevel(f.ExperienceLevels, j.ExperienceLevel) {
		return false
	}
	if !matchesSalary(j, f) {
		return false
	}
	if len(f.RequiredSkills) > 0 && !anyOf(j.Skills.Required, f.RequiredSkills) {
		return false
	}
	if len(f.PreferredSkills) > 0 && !anyOf(j.Skills.Preferred, f.PreferredSkills) {
		return false
	}
	if f.MaxAgeDays > 0 {
		cutoff := now.AddDate(0, 0, -f.MaxAgeDays)
		if j.PublishedAt.Before(cutoff) {
			return false
		}
	}
	if f.Query != "" && !matchesQuery(j, f.Query) {
		return false
	}
	return true
}

// matchesQuery OR-matches the free-text query case-insensitively across
// title, description, requirements and company name.
func matchesQuery(j *types.CanonicalJob, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Description), q) ||
		strings.Contains(strings.ToLower(j.Requirements), q) ||
		strings.Contains(strings.ToLower(j.CompanyName), q)
}

// matchesSalary applies range-overlap semantics: a salaryMin filter passes
// when either bound of the job's range reaches it, a salaryMax filter passes
// when the job's lower bound does not exceed it.
func matchesSalary(j *types.CanonicalJob, f *types.SearchFilter) bool {
	if f.SalaryMin != nil {
		minOK := j.Salary.Min != nil && *j.Salary.Min >= *f.SalaryMin
		maxOK := j.Salary.Max != nil && *j.Salary.Max >= *f.SalaryMin
		if !minOK && !maxOK {
			return false
		}
	}
	if f.SalaryMax != nil {
		if j.Salary.Min != nil && *j.Salary.Min > *f.SalaryMax {
			return false
		}
	}
	return true
}

// anyOf reports a non-empty case-insensitive intersection.
func anyOf(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func containsJobType(set []types.JobType, t types.JobType) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func containsLevel(set []types.ExperienceLevel, l types.ExperienceLevel) bool {
	for _, s := range set {
		if s == l {
			return true
		}
	}
	return false
}
