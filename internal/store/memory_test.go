package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzansijobs/careerhub/internal/types"
)

var memNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func seedJob(t *testing.T, m *Memory, mutate func(*types.CanonicalJob)) *types.CanonicalJob {
	t.Helper()
	job := &types.CanonicalJob{
		ID:              uuid.New(),
		Title:           "Software Developer",
		Description:     "Write Go services",
		CompanyID:       uuid.New(),
		CompanyName:     "Acme Corp",
		JobType:         types.JobTypeFullTime,
		ExperienceLevel: types.LevelMid,
		Location:        types.Location{Province: "Gauteng", City: "Johannesburg"},
		Skills:          types.Skills{Required: []string{"Go"}},
		Status:          types.StatusActive,
		PublishedAt:     memNow.AddDate(0, 0, -1),
		LastSeenAt:      memNow,
	}
	if mutate != nil {
		mutate(job)
	}
	require.NoError(t, m.CreateJob(context.Background(), job))
	return job
}

func TestMemory_GetJob(t *testing.T) {
	m := NewMemory()
	job := seedJob(t, m, nil)

	got, err := m.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, job.Title, got.Title)

	absent, err := m.GetJob(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, absent, "missing rows are (nil, nil), not errors")
}

func TestMemory_FindByExternalID(t *testing.T) {
	m := NewMemory()
	seedJob(t, m, func(j *types.CanonicalJob) {
		j.Source = "careers24"
		j.ExternalID = "abc-1"
	})

	got, err := m.FindByExternalID(context.Background(), "careers24", "abc-1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	// Same external id under another source is a different listing.
	got, err = m.FindByExternalID(context.Background(), "pnet", "abc-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = m.FindByExternalID(context.Background(), "careers24", "")
	require.NoError(t, err)
	assert.Nil(t, got, "empty external id never matches")
}

func TestMemory_FindByTitleCompanyFoldsCompanyCase(t *testing.T) {
	m := NewMemory()
	seedJob(t, m, nil)

	got, err := m.FindByTitleCompany(context.Background(), "Software Developer", "ACME CORP")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = m.FindByTitleCompany(context.Background(), "software developer", "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, got, "title matching is exact")
}

func TestMemory_Counters(t *testing.T) {
	m := NewMemory()
	job := seedJob(t, m, nil)

	require.NoError(t, m.IncrementViewCount(context.Background(), job.ID))
	require.NoError(t, m.IncrementViewCount(context.Background(), job.ID))
	require.NoError(t, m.IncrementApplicationCount(context.Background(), job.ID))

	got, err := m.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
	assert.Equal(t, 1, got.ApplicationCount)
}

func TestMemory_SearchAppliesFilterSemantics(t *testing.T) {
	m := NewMemory()
	seedJob(t, m, nil)
	seedJob(t, m, func(j *types.CanonicalJob) {
		j.Title = "Nurse"
		j.Description = "Hospital work"
		j.Location = types.Location{Province: "Western Cape", City: "Cape Town"}
	})
	seedJob(t, m, func(j *types.CanonicalJob) {
		j.Status = types.StatusInactive
	})

	filter := &types.SearchFilter{
		Status: types.StatusActive,
		Query:  "developer",
		Page:   1,
		Limit:  10,
		SortBy: types.SortDate,
	}
	result, err := m.Search(context.Background(), filter, memNow)
	require.NoError(t, err)

	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Software Developer", result.Jobs[0].Title)
	assert.Equal(t, 1, result.Pagination.Total)
	assert.Equal(t, 1, result.Facets.ByProvince["Gauteng"])
}

func TestMemory_ListCandidates(t *testing.T) {
	m := NewMemory()

	excluded := seedJob(t, m, nil)
	inactive := seedJob(t, m, func(j *types.CanonicalJob) { j.Status = types.StatusInactive })
	featured := seedJob(t, m, func(j *types.CanonicalJob) { j.Featured = true })
	plain := seedJob(t, m, nil)

	out, err := m.ListCandidates(context.Background(), []uuid.UUID{excluded.ID}, 10)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, featured.ID, out[0].ID, "featured candidates lead")
	assert.Equal(t, plain.ID, out[1].ID)
	for _, j := range out {
		assert.NotEqual(t, excluded.ID, j.ID)
		assert.NotEqual(t, inactive.ID, j.ID)
	}
}

func TestMemory_ListCandidatesHonorsLimit(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 8; i++ {
		seedJob(t, m, nil)
	}

	out, err := m.ListCandidates(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestMemory_ListSimilar(t *testing.T) {
	m := NewMemory()

	ref := seedJob(t, m, nil)
	sameCompany := seedJob(t, m, func(j *types.CanonicalJob) {
		j.CompanyID = ref.CompanyID
		j.Title = "QA Engineer"
		j.JobType = types.JobTypeContract
		j.ExperienceLevel = types.LevelJunior
		j.Location = types.Location{}
		j.Skills = types.Skills{}
	})
	sameSkill := seedJob(t, m, func(j *types.CanonicalJob) {
		j.Title = "Platform Engineer"
		j.JobType = types.JobTypeContract
		j.ExperienceLevel = types.LevelSenior
		j.Location = types.Location{}
		j.Skills = types.Skills{Preferred: []string{"go"}}
	})
	unrelated := seedJob(t, m, func(j *types.CanonicalJob) {
		j.Title = "Chef"
		j.JobType = types.JobTypePartTime
		j.ExperienceLevel = types.LevelEntry
		j.Location = types.Location{Province: "Free State", City: "Bloemfontein"}
		j.Skills = types.Skills{}
	})

	out, err := m.ListSimilar(context.Background(), ref, 10)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool)
	for _, j := range out {
		ids[j.ID] = true
	}
	assert.True(t, ids[sameCompany.ID], "same employer is similar")
	assert.True(t, ids[sameSkill.ID], "skill overlap is similar, case-insensitive")
	assert.False(t, ids[unrelated.ID])
	assert.False(t, ids[ref.ID], "reference job is excluded")
}

func TestMemory_GetOrCreateByName(t *testing.T) {
	m := NewMemory()

	first, err := m.GetOrCreateByName(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.False(t, first.Verified, "scraped companies start unverified")

	again, err := m.GetOrCreateByName(context.Background(), "ACME CORP")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID, "names are unique case-insensitively")
	assert.Equal(t, "Acme Corp", again.Name)
}

func TestMemory_Scores(t *testing.T) {
	m := NewMemory()
	jobID, userID := uuid.New(), uuid.New()

	absent, err := m.GetScore(context.Background(), jobID, userID)
	require.NoError(t, err)
	assert.Nil(t, absent)

	score := &types.MatchScore{JobID: jobID, UserID: userID, Score: 72.5, ComputedAt: memNow}
	require.NoError(t, m.PutScore(context.Background(), score))

	got, err := m.GetScore(context.Background(), jobID, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 72.5, got.Score)

	// Upsert semantics: a second write replaces the value.
	score.Score = 80
	require.NoError(t, m.PutScore(context.Background(), score))
	got, err = m.GetScore(context.Background(), jobID, userID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.Score)
}
