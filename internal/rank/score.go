// Package rank computes multi-factor relevance scores between jobs and user
// profiles, and orders recommendation candidates by them.
package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mzansijobs/careerhub/internal/types"
)

// Weights is the scoring policy. The components must sum to 1.0; scores are
// scaled to [0,100].
type Weights struct {
	Skills     float64
	Location   float64
	Experience float64
	JobType    float64
	Industry   float64
}

// DefaultWeights returns the standard policy.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.40,
		Location:   0.20,
		Experience: 0.20,
		JobType:    0.10,
		Industry:   0.10,
	}
}

// Validate checks that the weights form a convex combination.
func (w Weights) Validate() error {
	sum := w.Skills + w.Location + w.Experience + w.JobType + w.Industry
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("ranking weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// neutral is the sub-score used when one side of a comparison carries no
// signal (job lists no skills, user has no location preference).
const neutral = 0.5

// Score computes the relevance of a job for a user on a [0,100] scale.
func Score(j *types.CanonicalJob, u *types.UserProfile, w Weights) float64 {
	s := w.Skills*skillsScore(j, u) +
		w.Location*locationScore(j, u) +
		w.Experience*experienceScore(j, u) +
		w.JobType*jobTypeScore(j, u) +
		w.Industry*industryScore(j, u)

	score := s * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// skillsScore is the fraction of the job's skills (required and preferred)
// that fuzzy-match at least one user skill. Substring matching runs in both
// directions so "Postgres" matches "PostgreSQL".
func skillsScore(j *types.CanonicalJob, u *types.UserProfile) float64 {
	jobSkills := j.AllSkills()
	if len(jobSkills) == 0 {
		return neutral
	}
	if len(u.Skills) == 0 {
		return 0
	}

	matched := 0
	for _, js := range jobSkills {
		for _, us := range u.Skills {
			if fuzzyMatch(js, us) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

func fuzzyMatch(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// locationScore: remote jobs always fit; otherwise any preferred location
// substring-matching the job's city or province counts as a fit. Users with
// no preference score neutral.
func locationScore(j *types.CanonicalJob, u *types.UserProfile) float64 {
	if j.Location.IsRemote {
		return 1.0
	}
	if len(u.PreferredLocations) == 0 {
		return neutral
	}
	for _, pref := range u.PreferredLocations {
		if fuzzyMatch(j.Location.City, pref) || fuzzyMatch(j.Location.Province, pref) {
			return 1.0
		}
	}
	return 0
}

// experienceScore decays linearly with distance on the five-level scale:
// (levels - |Δ|) / levels.
func experienceScore(j *types.CanonicalJob, u *types.UserProfile) float64 {
	ji := types.LevelIndex(j.ExperienceLevel)
	ui := types.LevelIndex(u.ExperienceLevel)
	if ji < 0 || ui < 0 {
		return neutral
	}
	levels := float64(len(types.ExperienceLevels))
	delta := math.Abs(float64(ji - ui))
	return (levels - delta) / levels
}

func jobTypeScore(j *types.CanonicalJob, u *types.UserProfile) float64 {
	if len(u.PreferredJobTypes) == 0 {
		return neutral
	}
	for _, t := range u.PreferredJobTypes {
		if t == j.JobType {
			return 1.0
		}
	}
	return 0
}

func industryScore(j *types.CanonicalJob, u *types.UserProfile) float64 {
	if len(u.PreferredIndustries) == 0 {
		return neutral
	}
	for _, ind := range u.PreferredIndustries {
		if strings.EqualFold(ind, j.Industry) {
			return 1.0
		}
	}
	return 0
}

// Scored pairs a job with its computed relevance.
type Scored struct {
	Job   types.CanonicalJob
	Score float64
}

// RankJobs scores every candidate and returns them ordered by score
// descending, stable so the candidate pre-ordering breaks ties.
func RankJobs(candidates []types.CanonicalJob, u *types.UserProfile, w Weights) []Scored {
	out := make([]Scored, len(candidates))
	for i := range candidates {
		out[i] = Scored{Job: candidates[i], Score: Score(&candidates[i], u, w)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
