package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansijobs/careerhub/internal/types"
)

func candidateSet(n int) []types.CanonicalJob {
	jobs := make([]types.CanonicalJob, n)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range jobs {
		jobs[i] = types.CanonicalJob{
			ID:              uuid.New(),
			Title:           fmt.Sprintf("Developer %02d", i),
			CompanyName:     "Acme Corp",
			JobType:         types.JobTypeFullTime,
			ExperienceLevel: types.LevelMid,
			Location:        types.Location{Province: "Gauteng"},
			Status:          types.StatusActive,
			PublishedAt:     base.Add(time.Duration(i) * time.Hour),
		}
	}
	return jobs
}

func TestEvaluate_PaginationCoversWholeSetOnceEach(t *testing.T) {
	jobs := candidateSet(25)
	f := &types.SearchFilter{Status: types.StatusActive, Limit: 10, SortBy: types.SortDate}

	seen := make(map[uuid.UUID]bool)
	for page := 1; page <= 3; page++ {
		f.Page = page
		result := Evaluate(jobs, f, time.Now())

		assert.Equal(t, 25, result.Pagination.Total)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.Equal(t, page > 1, result.Pagination.HasPrevious)
		assert.Equal(t, page < 3, result.Pagination.HasNext)

		for _, j := range result.Jobs {
			assert.False(t, seen[j.ID], "job %s returned twice", j.ID)
			seen[j.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestEvaluate_PageBeyondEndIsEmpty(t *testing.T) {
	jobs := candidateSet(5)
	f := &types.SearchFilter{Limit: 10, Page: 3, SortBy: types.SortDate}

	result := Evaluate(jobs, f, time.Now())

	assert.Empty(t, result.Jobs)
	assert.Equal(t, 5, result.Pagination.Total)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrevious)
}

func TestEvaluate_FacetsCoverFullMatchedSet(t *testing.T) {
	jobs := candidateSet(12)
	jobs[0].Location.Province = "Western Cape"
	jobs[1].JobType = types.JobTypeContract
	jobs[2].ExperienceLevel = types.LevelSenior

	f := &types.SearchFilter{Limit: 5, Page: 1, SortBy: types.SortDate}
	result := Evaluate(jobs, f, time.Now())

	// Facets describe all 12 matches even though the page holds 5.
	require.Len(t, result.Jobs, 5)
	assert.Equal(t, 11, result.Facets.ByProvince["Gauteng"])
	assert.Equal(t, 1, result.Facets.ByProvince["Western Cape"])
	assert.Equal(t, 11, result.Facets.ByJobType[string(types.JobTypeFullTime)])
	assert.Equal(t, 1, result.Facets.ByJobType[string(types.JobTypeContract)])
	assert.Equal(t, 1, result.Facets.ByExperienceLevel[string(types.LevelSenior)])
}

func TestEvaluate_EmptyMatchedSet(t *testing.T) {
	jobs := candidateSet(3)
	f := &types.SearchFilter{Query: "nursing", Limit: 10, Page: 1}

	result := Evaluate(jobs, f, time.Now())

	assert.Empty(t, result.Jobs)
	assert.Zero(t, result.Pagination.Total)
	assert.Zero(t, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrevious)
	assert.Empty(t, result.Facets.ByProvince)
}
