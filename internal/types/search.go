package types

import (
	"github.com/google/uuid"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortDate       SortKey = "date"
	SortSalaryAsc  SortKey = "salary_asc"
	SortSalaryDesc SortKey = "salary_desc"
	SortCompany    SortKey = "company"
	SortTitle      SortKey = "title"
)

// SearchFilter is the ephemeral predicate specification for one query.
// All supplied predicates AND-combine. Zero values mean "no constraint".
type SearchFilter struct {
	// Query OR-matches case-insensitively across title, description,
	// requirements and company name.
	Query string `json:"query,omitempty"`

	Province string `json:"province,omitempty" validate:"omitempty,max=64"`
	City     string `json:"city,omitempty" validate:"omitempty,max=64"`

	JobTypes         []JobType         `json:"job_types,omitempty" validate:"dive,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP TEMPORARY REMOTE"`
	ExperienceLevels []ExperienceLevel `json:"experience_levels,omitempty" validate:"dive,oneof=ENTRY JUNIOR MID SENIOR EXECUTIVE"`

	SalaryMin *int `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax *int `json:"salary_max,omitempty" validate:"omitempty,gte=0"`

	// Skill filters use any-of semantics against the matching list.
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Industry  string     `json:"industry,omitempty"`

	Status       JobStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	RemoteOnly   bool      `json:"remote_only,omitempty"`
	FeaturedOnly bool      `json:"featured_only,omitempty"`
	UrgentOnly   bool      `json:"urgent_only,omitempty"`

	// MaxAgeDays restricts results to jobs published within the window.
	MaxAgeDays int `json:"max_age_days,omitempty" validate:"gte=0"`

	Page   int     `json:"page,omitempty" validate:"gte=0"`
	Limit  int     `json:"limit,omitempty" validate:"gte=0,lte=100"`
	SortBy SortKey `json:"sort_by,omitempty" validate:"omitempty,oneof=relevance date salary_asc salary_desc company title"`
}

// Pagination describes the page window of a SearchResult relative to the
// full matched set.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Facets holds aggregate counts over the full matched set, broken down per
// dimension.
type Facets struct {
	ByProvince        map[string]int `json:"by_province"`
	ByJobType         map[string]int `json:"by_job_type"`
	ByExperienceLevel map[string]int `json:"by_experience_level"`
}

// NewFacets returns a Facets value with initialized maps.
func NewFacets() Facets {
	return Facets{
		ByProvince:        make(map[string]int),
		ByJobType:         make(map[string]int),
		ByExperienceLevel: make(map[string]int),
	}
}

// Add counts one matching job into every facet dimension.
func (f *Facets) Add(j *CanonicalJob) {
	if j.Location.Province != "" {
		f.ByProvince[j.Location.Province]++
	}
	f.ByJobType[string(j.JobType)]++
	f.ByExperienceLevel[string(j.ExperienceLevel)]++
}

// SearchResult is one page of jobs plus pagination metadata and the facet
// distribution of the full matched set.
type SearchResult struct {
	Jobs       []CanonicalJob `json:"jobs"`
	Pagination Pagination     `json:"pagination"`
	Facets     Facets         `json:"facets"`
}
