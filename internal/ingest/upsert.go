// Package ingest runs the fetch → extract → normalize → dedup/upsert
// pipeline over the configured sources.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/normalize"
	"github.com/mzansijobs/careerhub/internal/store"
	"github.com/mzansijobs/careerhub/internal/types"
)

// Upserter deduplicates raw listings against the canonical store and
// inserts only new records.
type Upserter struct {
	jobs      store.JobStore
	companies store.CompanyStore
	logger    *zap.Logger
}

// NewUpserter wires an Upserter over the given stores.
func NewUpserter(jobs store.JobStore, companies store.CompanyStore, logger *zap.Logger) *Upserter {
	return &Upserter{jobs: jobs, companies: companies, logger: logger}
}

// UpsertBatch processes each listing independently: a duplicate or failure
// on one item never stops the rest. Counters accumulate into the returned
// stats.
func (u *Upserter) UpsertBatch(ctx context.Context, listings []types.RawListing, now time.Time) types.IngestStats {
	stats := types.IngestStats{Total: len(listings), BySource: make(map[string]int)}

	for i := range listings {
		raw := &listings[i]
		outcome, err := u.upsertOne(ctx, raw, now)
		switch {
		case err != nil:
			stats.Errors++
			u.logger.Warn("listing upsert failed",
				zap.String("source", raw.Source),
				zap.String("title", raw.Title),
				zap.Error(err),
			)
		case outcome == outcomeDuplicate:
			stats.Duplicates++
		default:
			stats.Processed++
			stats.BySource[raw.Source]++
		}
	}

	return stats
}

type upsertOutcome int

const (
	outcomeInserted upsertOutcome = iota
	outcomeDuplicate
)

// upsertOne applies the dedup match priority: (source, externalId) first,
// then the exact (title, company-name) pair. A repeat sighting only touches
// LastSeenAt; stored fields are never overwritten by re-scrapes.
func (u *Upserter) upsertOne(ctx context.Context, raw *types.RawListing, now time.Time) (upsertOutcome, error) {
	if raw.ExternalID != "" {
		existing, err := u.jobs.FindByExternalID(ctx, raw.Source, raw.ExternalID)
		if err != nil {
			return 0, fmt.Errorf("dedup by external id: %w", err)
		}
		if existing != nil {
			return outcomeDuplicate, u.touch(ctx, existing, now)
		}
	}

	existing, err := u.jobs.FindByTitleCompany(ctx, raw.Title, raw.Company)
	if err != nil {
		return 0, fmt.Errorf("dedup by title/company: %w", err)
	}
	if existing != nil {
		return outcomeDuplicate, u.touch(ctx, existing, now)
	}

	company, err := u.companies.GetOrCreateByName(ctx, raw.Company)
	if err != nil {
		return 0, fmt.Errorf("resolve company: %w", err)
	}

	job := BuildJob(raw, company, now)
	if err := u.jobs.CreateJob(ctx, job); err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}
	return outcomeInserted, nil
}

func (u *Upserter) touch(ctx context.Context, existing *types.CanonicalJob, now time.Time) error {
	if err := u.jobs.TouchLastSeen(ctx, existing.ID, now); err != nil {
		return fmt.Errorf("touch duplicate: %w", err)
	}
	return nil
}

// BuildJob normalizes a raw listing into a new ACTIVE canonical record.
func BuildJob(raw *types.RawListing, company *types.Company, now time.Time) *types.CanonicalJob {
	loc := normalize.Location(raw.Location)

	jobType := normalize.JobType(raw.Title, raw.Description)
	if jobType == types.JobTypeRemote {
		loc.IsRemote = true
	}

	published := normalize.PostedDate(raw.DateText, now)
	if published.IsZero() {
		published = now
	}

	return &types.CanonicalJob{
		ID:              uuid.New(),
		Title:           raw.Title,
		Description:     raw.Description,
		CompanyID:       company.ID,
		CompanyName:     company.Name,
		JobType:         jobType,
		ExperienceLevel: normalize.ExperienceLevel(raw.Title, raw.Description),
		Location:        loc,
		Salary:          normalize.Salary(raw.SalaryText),
		Skills:          types.Skills{Required: normalize.Skills(raw.Description)},
		ExternalID:      raw.ExternalID,
		Source:          raw.Source,
		SourceURL:       raw.DetailURL,
		Status:          types.StatusActive,
		CreatedAt:       now,
		PublishedAt:     published,
		ExpiresAt:       normalize.Deadline(published),
		LastSeenAt:      now,
	}
}
