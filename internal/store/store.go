// Package store persists canonical jobs, companies and match scores. The
// Postgres implementation is the system of record; the memory implementation
// backs tests and local runs with the same semantics.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mzansijobs/careerhub/internal/types"
)

// JobStore is the canonical-job persistence contract. Lookup methods return
// (nil, nil) when no record exists; errors mean the store itself failed.
type JobStore interface {
	CreateJob(ctx context.Context, job *types.CanonicalJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*types.CanonicalJob, error)

	// FindByExternalID matches on the (source, externalID) pair.
	FindByExternalID(ctx context.Context, source, externalID string) (*types.CanonicalJob, error)
	// FindByTitleCompany matches the exact (title, company-name) pair,
	// company name case-insensitive.
	FindByTitleCompany(ctx context.Context, title, companyName string) (*types.CanonicalJob, error)

	TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.JobStatus) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementApplicationCount(ctx context.Context, id uuid.UUID) error

	// Search executes the full filter semantics and returns one page plus
	// facets over the whole matched set.
	Search(ctx context.Context, filter *types.SearchFilter, now time.Time) (*types.SearchResult, error)

	// ListCandidates returns up to limit active jobs not in excludeIDs,
	// ordered by featured desc, urgent desc, published desc.
	ListCandidates(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]types.CanonicalJob, error)

	// ListSimilar returns active jobs related to ref by company, by
	// (job type, experience level), by skill overlap, or by (city,
	// province); ref itself is always excluded.
	ListSimilar(ctx context.Context, ref *types.CanonicalJob, limit int) ([]types.CanonicalJob, error)

	// ListExternalActive returns externally-sourced active jobs for the
	// staleness sweep.
	ListExternalActive(ctx context.Context) ([]types.CanonicalJob, error)

	// PurgeStale deletes externally-sourced inactive jobs whose last
	// sighting precedes cutoff, returning the count removed.
	PurgeStale(ctx context.Context, cutoff time.Time) (int, error)
}

// CompanyStore resolves employers by name, creating unverified records for
// names first seen during ingestion.
type CompanyStore interface {
	GetOrCreateByName(ctx context.Context, name string) (*types.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*types.Company, error)
}

// MatchScoreStore caches computed (job, user) relevance values. The cache is
// advisory: readers recompute when a row is absent.
type MatchScoreStore interface {
	GetScore(ctx context.Context, jobID, userID uuid.UUID) (*types.MatchScore, error)
	PutScore(ctx context.Context, score *types.MatchScore) error
}

// UserProvider is the read-only profile source, served by an external
// account system.
type UserProvider interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
}
