package normalize

import (
	"strings"

	"github.com/mzansijobs/careerhub/internal/types"
)

// jobTypeKeywords are checked in priority order; the first hit wins.
var jobTypeKeywords = []struct {
	jobType  types.JobType
	keywords []string
}{
	{types.JobTypeRemote, []string{"remote", "work from home", "telecommute"}},
	{types.JobTypeContract, []string{"contract", "contractor", "fixed term", "fixed-term"}},
	{types.JobTypePartTime, []string{"part time", "part-time"}},
	{types.JobTypeInternship, []string{"intern", "internship", "learnership", "graduate programme"}},
	{types.JobTypeTemporary, []string{"temporary", "temp ", "seasonal"}},
}

// JobType infers the employment type from title and description, defaulting
// to FULL_TIME.
func JobType(title, description string) types.JobType {
	haystack := strings.ToLower(title + " " + description)
	for _, entry := range jobTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(haystack, kw) {
				return entry.jobType
			}
		}
	}
	return types.JobTypeFullTime
}

// levelKeywords are checked in priority order, most senior first so that
// "senior graduate mentor" style titles resolve to the stronger signal.
var levelKeywords = []struct {
	level    types.ExperienceLevel
	keywords []string
}{
	{types.LevelExecutive, []string{"executive", "head of", "director", "chief "}},
	{types.LevelSenior, []string{"senior", "snr", "lead "}},
	{types.LevelJunior, []string{"junior", "jnr", "graduate"}},
	{types.LevelEntry, []string{"entry level", "entry-level", "no experience", "trainee"}},
}

// ExperienceLevel infers the seniority of a listing, defaulting to MID.
func ExperienceLevel(title, description string) types.ExperienceLevel {
	haystack := strings.ToLower(title + " " + description)
	for _, entry := range levelKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(haystack, kw) {
				return entry.level
			}
		}
	}
	return types.LevelMid
}
