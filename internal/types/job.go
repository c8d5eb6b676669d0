// Package types defines the shared domain model for the aggregation backend.
package types

import (
	"time"

	"github.com/google/uuid"
)

// JobType classifies the employment arrangement of a listing.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeTemporary  JobType = "TEMPORARY"
	JobTypeRemote     JobType = "REMOTE"
)

// ExperienceLevel is the ordered seniority scale used by ranking.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "ENTRY"
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

// ExperienceLevels lists the scale in ascending order of seniority.
var ExperienceLevels = []ExperienceLevel{
	LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelExecutive,
}

// LevelIndex returns the position of lvl on the seniority scale, or -1.
func LevelIndex(lvl ExperienceLevel) int {
	for i, l := range ExperienceLevels {
		if l == lvl {
			return i
		}
	}
	return -1
}

// JobStatus marks whether a listing is still served by search.
type JobStatus string

const (
	StatusActive   JobStatus = "ACTIVE"
	StatusInactive JobStatus = "INACTIVE"
)

// SalaryPeriod is the pay frequency attached to a salary range.
type SalaryPeriod string

const (
	PeriodHourly   SalaryPeriod = "HOURLY"
	PeriodMonthly  SalaryPeriod = "MONTHLY"
	PeriodAnnually SalaryPeriod = "ANNUALLY"
)

// Provinces is the fixed set of valid province values.
var Provinces = []string{
	"Eastern Cape",
	"Free State",
	"Gauteng",
	"KwaZulu-Natal",
	"Limpopo",
	"Mpumalanga",
	"North West",
	"Northern Cape",
	"Western Cape",
}

// ValidProvince reports whether name is one of the nine provinces.
func ValidProvince(name string) bool {
	for _, p := range Provinces {
		if p == name {
			return true
		}
	}
	return false
}

// Location is the normalized place a job is based in. Province and City may
// both be empty when normalization could not resolve the raw text.
type Location struct {
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	IsRemote bool   `json:"is_remote"`
}

// Salary is the normalized pay range. Min and Max are nil when the source
// did not advertise an amount.
type Salary struct {
	Min      *int         `json:"min,omitempty"`
	Max      *int         `json:"max,omitempty"`
	Currency string       `json:"currency,omitempty"`
	Period   SalaryPeriod `json:"period,omitempty"`
	Visible  bool         `json:"visible"`
}

// Skills splits a listing's skill demands into hard requirements and
// nice-to-haves.
type Skills struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// CanonicalJob is the deduplicated, normalized listing stored as system of
// record.
type CanonicalJob struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Requirements     string          `json:"requirements,omitempty"`
	Responsibilities string          `json:"responsibilities,omitempty"`
	CompanyID        uuid.UUID       `json:"company_id"`
	CompanyName      string          `json:"company_name"`
	JobType          JobType         `json:"job_type"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	Location         Location        `json:"location"`
	Salary           Salary          `json:"salary"`
	Skills           Skills          `json:"skills"`
	Industry         string          `json:"industry,omitempty"`

	// ExternalID is unique per originating source when present. Jobs posted
	// directly by employers have an empty ExternalID and Source.
	ExternalID string `json:"external_id,omitempty"`
	Source     string `json:"source,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`

	Status   JobStatus `json:"status"`
	Featured bool      `json:"featured"`
	Urgent   bool      `json:"urgent"`

	ViewCount        int `json:"view_count"`
	ApplicationCount int `json:"application_count"`

	CreatedAt   time.Time `json:"created_at"`
	PublishedAt time.Time `json:"published_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// IsExternal reports whether the job came from the ingestion pipeline rather
// than a direct employer posting.
func (j *CanonicalJob) IsExternal() bool {
	return j.Source != ""
}

// AllSkills returns the union of required and preferred skills.
func (j *CanonicalJob) AllSkills() []string {
	out := make([]string, 0, len(j.Skills.Required)+len(j.Skills.Preferred))
	out = append(out, j.Skills.Required...)
	out = append(out, j.Skills.Preferred...)
	return out
}

// Company is an employer record. Names are unique case-insensitively;
// companies created during ingestion start unverified.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchScore is a cached relevance value for a (job, user) pair. It is
// advisory only; callers recompute when a row is absent.
type MatchScore struct {
	JobID      uuid.UUID `json:"job_id"`
	UserID     uuid.UUID `json:"user_id"`
	Score      float64   `json:"score"`
	ComputedAt time.Time `json:"computed_at"`
}

// UserProfile is the read-only view of a job seeker used for ranking.
// Provided by an external profile service.
type UserProfile struct {
	ID                  uuid.UUID       `json:"id"`
	Skills              []string        `json:"skills"`
	PreferredLocations  []string        `json:"preferred_locations"`
	PreferredJobTypes   []JobType       `json:"preferred_job_types"`
	PreferredIndustries []string        `json:"preferred_industries"`
	ExperienceLevel     ExperienceLevel `json:"experience_level"`
	SavedJobIDs         []uuid.UUID     `json:"saved_job_ids"`
	AppliedJobIDs       []uuid.UUID     `json:"applied_job_ids"`
}
