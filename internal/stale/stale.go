// Package stale reconfirms listing liveness at the originating boards and
// purges long-inactive externally-sourced records.
package stale

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/apperr"
	"github.com/mzansijobs/careerhub/internal/scrape"
	"github.com/mzansijobs/careerhub/internal/store"
	"github.com/mzansijobs/careerhub/internal/types"
)

// Manager drives liveness rechecks and retention purges.
type Manager struct {
	jobs    store.JobStore
	client  *http.Client
	delay   time.Duration
	logger  *zap.Logger
	sleepFn func(time.Duration)
}

// NewManager builds a Manager. timeout bounds each liveness probe; delay
// spaces probes during sweeps.
func NewManager(jobs store.JobStore, timeout, delay time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		jobs:    jobs,
		client:  &http.Client{Timeout: timeout},
		delay:   delay,
		logger:  logger,
		sleepFn: time.Sleep,
	}
}

// RefreshListing probes the job's source URL and reports whether the
// listing is still live. A dead or unreachable origin flips the record to
// INACTIVE; the probe failure itself is not an error.
func (m *Manager) RefreshListing(ctx context.Context, jobID uuid.UUID) (bool, error) {
	job, err := m.jobs.GetJob(ctx, jobID)
	if err != nil {
		return false, apperr.Internal("refresh listing", err)
	}
	if job == nil {
		return false, apperr.NotFound("job", jobID.String())
	}
	if !job.IsExternal() {
		// Employer-posted jobs have no origin to reconfirm.
		return job.Status == types.StatusActive, nil
	}

	alive := m.probe(ctx, job.SourceURL)
	if !alive && job.Status == types.StatusActive {
		if err := m.jobs.UpdateStatus(ctx, job.ID, types.StatusInactive); err != nil {
			return false, apperr.Internal("deactivate listing", err)
		}
		m.logger.Info("listing deactivated",
			zap.String("job_id", job.ID.String()),
			zap.String("source", job.Source),
		)
	}
	return alive, nil
}

// probe HEADs the origin, falling back to GET for boards that reject HEAD.
func (m *Manager) probe(ctx context.Context, url string) bool {
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return false
		}
		req.Header.Set("User-Agent", scrape.UserAgent)

		resp, err := m.client.Do(req)
		if err != nil {
			continue
		}
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
			return false
		case resp.StatusCode < 400:
			return true
		case resp.StatusCode == http.StatusMethodNotAllowed && method == http.MethodHead:
			continue
		default:
			return false
		}
	}
	return false
}

// Sweep rechecks every externally-sourced active listing, pausing between
// probes. Returns how many listings were deactivated.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	jobs, err := m.jobs.ListExternalActive(ctx)
	if err != nil {
		return 0, apperr.Internal("staleness sweep", err)
	}

	deactivated := 0
	for i := range jobs {
		if ctx.Err() != nil {
			return deactivated, ctx.Err()
		}
		if i > 0 && m.delay > 0 {
			m.sleepFn(m.delay)
		}

		alive, err := m.RefreshListing(ctx, jobs[i].ID)
		if err != nil {
			m.logger.Warn("liveness recheck failed",
				zap.String("job_id", jobs[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		if !alive {
			deactivated++
		}
	}

	m.logger.Info("staleness sweep finished",
		zap.Int("checked", len(jobs)),
		zap.Int("deactivated", deactivated),
	)
	return deactivated, nil
}

// Purge removes externally-sourced inactive listings not sighted in the
// last daysOld days.
func (m *Manager) Purge(ctx context.Context, daysOld int) (int, error) {
	if daysOld < 1 {
		return 0, apperr.Validation("days_old", "must be at least 1")
	}

	cutoff := time.Now().AddDate(0, 0, -daysOld)
	count, err := m.jobs.PurgeStale(ctx, cutoff)
	if err != nil {
		return 0, apperr.Internal("purge stale", err)
	}

	m.logger.Info("stale listings purged",
		zap.Int("count", count),
		zap.Time("cutoff", cutoff),
	)
	return count, nil
}
