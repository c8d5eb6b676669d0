package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mzansijobs/careerhub/internal/search"
	"github.com/mzansijobs/careerhub/internal/types"
)

// Memory is an in-process store with the same semantics as Postgres. It
// backs the test suite and keyless local runs; it is not durable.
type Memory struct {
	mu        sync.RWMutex
	jobs      map[uuid.UUID]types.CanonicalJob
	companies map[uuid.UUID]types.Company
	scores    map[[2]uuid.UUID]types.MatchScore
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{
		jobs:      make(map[uuid.UUID]types.CanonicalJob),
		companies: make(map[uuid.UUID]types.Company),
		scores:    make(map[[2]uuid.UUID]types.MatchScore),
	}
}

func (m *Memory) CreateJob(_ context.Context, job *types.CanonicalJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = *job
	return nil
}

func (m *Memory) GetJob(_ context.Context, id uuid.UUID) (*types.CanonicalJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if j, ok := m.jobs[id]; ok {
		return &j, nil
	}
	return nil, nil
}

func (m *Memory) FindByExternalID(_ context.Context, source, externalID string) (*types.CanonicalJob, error) {
	if externalID == "" {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, j := range m.jobs {
		if j.Source == source && j.ExternalID == externalID {
			out := j
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) FindByTitleCompany(_ context.Context, title, companyName string) (*types.CanonicalJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, j := range m.jobs {
		if j.Title == title && strings.EqualFold(j.CompanyName, companyName) {
			out := j
			return &out, nil
		}
	}
	return nil, nil
}

func (m *Memory) TouchLastSeen(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		j.LastSeenAt = at
		m.jobs[id] = j
	}
	return nil
}

func (m *Memory) UpdateStatus(_ context.Context, id uuid.UUID, status types.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		j.Status = status
		m.jobs[id] = j
	}
	return nil
}

func (m *Memory) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		j.ViewCount++
		m.jobs[id] = j
	}
	return nil
}

func (m *Memory) IncrementApplicationCount(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		j.ApplicationCount++
		m.jobs[id] = j
	}
	return nil
}

func (m *Memory) Search(_ context.Context, filter *types.SearchFilter, now time.Time) (*types.SearchResult, error) {
	result := search.Evaluate(m.snapshot(), filter, now)
	return &result, nil
}

func (m *Memory) ListCandidates(_ context.Context, excludeIDs []uuid.UUID, limit int) ([]types.CanonicalJob, error) {
	excluded := make(map[uuid.UUID]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var out []types.CanonicalJob
	for _, j := range m.snapshot() {
		if j.Status == types.StatusActive && !excluded[j.ID] {
			out = append(out, j)
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i], out[k]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Urgent != b.Urgent {
			return a.Urgent
		}
		return a.PublishedAt.After(b.PublishedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) ListSimilar(_ context.Context, ref *types.CanonicalJob, limit int) ([]types.CanonicalJob, error) {
	var out []types.CanonicalJob
	for _, j := range m.snapshot() {
		if j.ID == ref.ID || j.Status != types.StatusActive {
			continue
		}
		if similarTo(&j, ref) {
			out = append(out, j)
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].PublishedAt.After(out[k].PublishedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// similarTo mirrors the OR-predicate the Postgres implementation pushes into
// SQL.
func similarTo(j, ref *types.CanonicalJob) bool {
	if j.CompanyID == ref.CompanyID {
		return true
	}
	if j.JobType == ref.JobType && j.ExperienceLevel == ref.ExperienceLevel {
		return true
	}
	for _, a := range j.AllSkills() {
		for _, b := range ref.AllSkills() {
			if strings.EqualFold(a, b) {
				return true
			}
		}
	}
	if j.Location.City != "" &&
		strings.EqualFold(j.Location.City, ref.Location.City) &&
		j.Location.Province == ref.Location.Province {
		return true
	}
	return false
}

func (m *Memory) ListExternalActive(_ context.Context) ([]types.CanonicalJob, error) {
	var out []types.CanonicalJob
	for _, j := range m.snapshot() {
		if j.Status == types.StatusActive && j.IsExternal() {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].LastSeenAt.Before(out[k].LastSeenAt)
	})
	return out, nil
}

func (m *Memory) PurgeStale(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for id, j := range m.jobs {
		if j.IsExternal() && j.Status == types.StatusInactive && j.LastSeenAt.Before(cutoff) {
			delete(m.jobs, id)
			purged++
		}
	}
	return purged, nil
}

func (m *Memory) GetOrCreateByName(_ context.Context, name string) (*types.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.companies {
		if strings.EqualFold(c.Name, name) {
			out := c
			return &out, nil
		}
	}

	c := types.Company{ID: uuid.New(), Name: name, Verified: false, CreatedAt: time.Now()}
	m.companies[c.ID] = c
	return &c, nil
}

func (m *Memory) GetCompany(_ context.Context, id uuid.UUID) (*types.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.companies[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *Memory) GetScore(_ context.Context, jobID, userID uuid.UUID) (*types.MatchScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.scores[[2]uuid.UUID{jobID, userID}]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *Memory) PutScore(_ context.Context, score *types.MatchScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[[2]uuid.UUID{score.JobID, score.UserID}] = *score
	return nil
}

// snapshot copies the job set so readers never hold the lock during
// evaluation.
func (m *Memory) snapshot() []types.CanonicalJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.CanonicalJob, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out
}
