// Package jobs is the service facade over search, ranking, ingestion and
// staleness management. It is the boundary the presentation layer calls.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/activity"
	"github.com/mzansijobs/careerhub/internal/apperr"
	"github.com/mzansijobs/careerhub/internal/cache"
	"github.com/mzansijobs/careerhub/internal/ingest"
	"github.com/mzansijobs/careerhub/internal/rank"
	"github.com/mzansijobs/careerhub/internal/search"
	"github.com/mzansijobs/careerhub/internal/stale"
	"github.com/mzansijobs/careerhub/internal/store"
	"github.com/mzansijobs/careerhub/internal/types"
)

// recommendOverfetch is the candidate superset multiplier: re-ranking needs
// slack beyond the requested count to surface high-scoring stragglers.
const recommendOverfetch = 2

// StatsCache is the optional memoization layer for aggregate results.
// Satisfied by *cache.Cache; nil disables memoization.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service exposes the job-platform operations.
type Service struct {
	jobs     store.JobStore
	scores   store.MatchScoreStore
	users    store.UserProvider
	pipeline *ingest.Pipeline
	stale    *stale.Manager
	stats    StatsCache
	statsTTL time.Duration
	sink     activity.Sink
	weights  rank.Weights
	logger   *zap.Logger
	nowFn    func() time.Time
}

// Config wires a Service.
type Config struct {
	Jobs     store.JobStore
	Scores   store.MatchScoreStore
	Users    store.UserProvider
	Pipeline *ingest.Pipeline
	Stale    *stale.Manager
	Stats    StatsCache
	StatsTTL time.Duration
	Sink     activity.Sink
	Weights  rank.Weights
	Logger   *zap.Logger
}

// New builds a Service. Zero weights fall back to the default policy.
func New(cfg Config) (*Service, error) {
	w := cfg.Weights
	if w == (rank.Weights{}) {
		w = rank.DefaultWeights()
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		jobs:     cfg.Jobs,
		scores:   cfg.Scores,
		users:    cfg.Users,
		pipeline: cfg.Pipeline,
		stale:    cfg.Stale,
		stats:    cfg.Stats,
		statsTTL: cfg.StatsTTL,
		sink:     cfg.Sink,
		weights:  w,
		logger:   cfg.Logger,
		nowFn:    time.Now,
	}, nil
}

// SearchJobs validates and executes a filtered query. Facet distributions
// for a filter signature are memoized; a broken cache silently degrades to
// recomputation, while a broken store surfaces as INTERNAL.
func (s *Service) SearchJobs(ctx context.Context, filter types.SearchFilter) (*types.SearchResult, error) {
	search.Normalize(&filter)
	if err := search.Validate(&filter); err != nil {
		return nil, err
	}

	now := s.nowFn()
	result, err := s.jobs.Search(ctx, &filter, now)
	if err != nil {
		return nil, apperr.Internal("search jobs", err)
	}

	s.memoizeFacets(ctx, &filter, result)
	s.record(activity.Event{Type: activity.EventSearchRun, Detail: filter.Query, OccurredAt: now})

	return result, nil
}

// memoizeFacets stores the facet aggregation under the filter's signature
// so repeated pages of one query reuse it.
func (s *Service) memoizeFacets(ctx context.Context, filter *types.SearchFilter, result *types.SearchResult) {
	if s.stats == nil {
		return
	}
	key := cache.FacetsKey(filter)
	if err := s.stats.Set(ctx, key, result.Facets, s.statsTTL); err != nil {
		s.logger.Debug("facet cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// CachedFacets returns the memoized facet distribution for a filter, or
// ErrMiss-equivalent false when absent or the cache is down.
func (s *Service) CachedFacets(ctx context.Context, filter types.SearchFilter) (types.Facets, bool) {
	if s.stats == nil {
		return types.Facets{}, false
	}
	search.Normalize(&filter)
	var facets types.Facets
	if err := s.stats.Get(ctx, cache.FacetsKey(&filter), &facets); err != nil {
		return types.Facets{}, false
	}
	return facets, true
}

// GetRecommendations returns up to limit jobs ranked for the user,
// excluding anything already saved or applied to.
func (s *Service) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]types.CanonicalJob, error) {
	if limit < 1 {
		return nil, apperr.Validation("limit", "must be at least 1")
	}

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("load user profile", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", userID.String())
	}

	exclude := make([]uuid.UUID, 0, len(user.SavedJobIDs)+len(user.AppliedJobIDs))
	exclude = append(exclude, user.SavedJobIDs...)
	exclude = append(exclude, user.AppliedJobIDs...)

	candidates, err := s.jobs.ListCandidates(ctx, exclude, limit*recommendOverfetch)
	if err != nil {
		return nil, apperr.Internal("list candidates", err)
	}

	ranked := rank.RankJobs(candidates, user, s.weights)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	now := s.nowFn()
	out := make([]types.CanonicalJob, len(ranked))
	for i, r := range ranked {
		out[i] = r.Job
		// Advisory write-through; the read path recomputes on a miss.
		if err := s.scores.PutScore(ctx, &types.MatchScore{
			JobID:      r.Job.ID,
			UserID:     userID,
			Score:      r.Score,
			ComputedAt: now,
		}); err != nil {
			s.logger.Debug("match score cache write failed",
				zap.String("job_id", r.Job.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.record(activity.Event{Type: activity.EventRecommended, UserID: userID, OccurredAt: now})
	return out, nil
}

// MatchScore returns the relevance of one job for one user, serving the
// cached value when fresh and recomputing live when absent.
func (s *Service) MatchScore(ctx context.Context, jobID, userID uuid.UUID) (float64, error) {
	if cached, err := s.scores.GetScore(ctx, jobID, userID); err == nil && cached != nil {
		return cached.Score, nil
	}

	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return 0, apperr.Internal("load job", err)
	}
	if job == nil {
		return 0, apperr.NotFound("job", jobID.String())
	}

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return 0, apperr.Internal("load user profile", err)
	}
	if user == nil {
		return 0, apperr.NotFound("user", userID.String())
	}

	return rank.Score(job, user, s.weights), nil
}

// GetSimilarJobs returns active jobs related to the reference job.
func (s *Service) GetSimilarJobs(ctx context.Context, jobID uuid.UUID, limit int) ([]types.CanonicalJob, error) {
	if limit < 1 {
		return nil, apperr.Validation("limit", "must be at least 1")
	}

	ref, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal("load job", err)
	}
	if ref == nil {
		return nil, apperr.NotFound("job", jobID.String())
	}

	similar, err := s.jobs.ListSimilar(ctx, ref, limit)
	if err != nil {
		return nil, apperr.Internal("list similar jobs", err)
	}
	return similar, nil
}

// RunIngestionPipeline ingests the given keywords from every source.
func (s *Service) RunIngestionPipeline(ctx context.Context, keywords []string, maxPerSource int) (types.IngestStats, error) {
	if len(keywords) == 0 {
		return types.IngestStats{}, apperr.Validation("keywords", "at least one keyword is required")
	}
	if maxPerSource < 1 {
		return types.IngestStats{}, apperr.Validation("max_per_source", "must be at least 1")
	}
	return s.pipeline.Run(ctx, keywords, maxPerSource)
}

// RefreshListingStatus reconfirms one listing's liveness at its origin.
func (s *Service) RefreshListingStatus(ctx context.Context, jobID uuid.UUID) (bool, error) {
	return s.stale.RefreshListing(ctx, jobID)
}

// PurgeStale removes inactive externally-sourced listings older than
// daysOld.
func (s *Service) PurgeStale(ctx context.Context, daysOld int) (int, error) {
	return s.stale.Purge(ctx, daysOld)
}

// RecordView bumps a job's view counter and emits an activity event.
func (s *Service) RecordView(ctx context.Context, jobID, userID uuid.UUID) error {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return apperr.Internal("load job", err)
	}
	if job == nil {
		return apperr.NotFound("job", jobID.String())
	}

	if err := s.jobs.IncrementViewCount(ctx, jobID); err != nil {
		return apperr.Internal("record view", err)
	}
	s.record(activity.Event{Type: activity.EventJobViewed, UserID: userID, JobID: jobID, OccurredAt: s.nowFn()})
	return nil
}

// RecordApplication bumps a job's application counter and emits an
// activity event.
func (s *Service) RecordApplication(ctx context.Context, jobID, userID uuid.UUID) error {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return apperr.Internal("load job", err)
	}
	if job == nil {
		return apperr.NotFound("job", jobID.String())
	}

	if err := s.jobs.IncrementApplicationCount(ctx, jobID); err != nil {
		return apperr.Internal("record application", err)
	}
	s.record(activity.Event{Type: activity.EventJobApplied, UserID: userID, JobID: jobID, OccurredAt: s.nowFn()})
	return nil
}

// record dispatches an activity event without blocking or failing the
// caller.
func (s *Service) record(ev activity.Event) {
	if s.sink == nil {
		return
	}
	go s.sink.Record(context.Background(), ev)
}
