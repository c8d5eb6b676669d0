package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mzansijobs/careerhub/internal/scrape"
	"github.com/mzansijobs/careerhub/internal/source"
	"github.com/mzansijobs/careerhub/internal/types"
)

// maxPagesPerKeyword bounds the fetch loop even when a board keeps
// returning full pages.
const maxPagesPerKeyword = 5

// PageFetcher retrieves one search result document. Satisfied by
// *scrape.Fetcher; tests substitute canned documents.
type PageFetcher interface {
	FetchPage(ctx context.Context, src types.SourceConfig, keyword string, page int) (string, error)
}

// Options tunes one pipeline run.
type Options struct {
	// KeywordDelay is the pause between keyword searches within a source.
	KeywordDelay time.Duration
	// SourceDelay is the pause between sources in sequential mode.
	SourceDelay time.Duration
	// Parallel runs sources concurrently, one worker each. Per-source
	// request delays still apply, and one source's failure never blocks
	// another's run.
	Parallel bool
}

// Pipeline drives fetch, extraction and upsert across all registered
// sources.
type Pipeline struct {
	registry *source.Registry
	fetcher  PageFetcher
	upserter *Upserter
	opts     Options
	logger   *zap.Logger
	sleepFn  func(time.Duration)
	nowFn    func() time.Time
}

// NewPipeline assembles a Pipeline.
func NewPipeline(reg *source.Registry, fetcher PageFetcher, upserter *Upserter, opts Options, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		registry: reg,
		fetcher:  fetcher,
		upserter: upserter,
		opts:     opts,
		logger:   logger,
		sleepFn:  time.Sleep,
		nowFn:    time.Now,
	}
}

// Run ingests all keywords from every source and returns merged run
// statistics. Sources are processed in full, sequentially by default;
// cancellation is honored at source and keyword granularity, while an
// in-flight fetch simply runs to its timeout.
func (p *Pipeline) Run(ctx context.Context, keywords []string, maxPerSource int) (types.IngestStats, error) {
	stats := types.IngestStats{BySource: make(map[string]int)}
	sources := p.registry.List()

	p.logger.Info("ingestion run starting",
		zap.Int("sources", len(sources)),
		zap.Strings("keywords", keywords),
		zap.Int("max_per_source", maxPerSource),
		zap.Bool("parallel", p.opts.Parallel),
	)

	if p.opts.Parallel {
		var (
			g       errgroup.Group
			results = make([]types.IngestStats, len(sources))
		)
		for i, src := range sources {
			g.Go(func() error {
				results[i] = p.runSource(ctx, src, keywords, maxPerSource)
				return nil
			})
		}
		// Workers never return errors; per-source failures are already
		// folded into their stats.
		_ = g.Wait()
		for _, r := range results {
			stats.Merge(r)
		}
	} else {
		for i, src := range sources {
			if ctx.Err() != nil {
				p.logger.Warn("ingestion run cancelled", zap.String("next_source", src.Name))
				return stats, ctx.Err()
			}
			if i > 0 && p.opts.SourceDelay > 0 {
				p.sleepFn(p.opts.SourceDelay)
			}
			stats.Merge(p.runSource(ctx, src, keywords, maxPerSource))
		}
	}

	p.logger.Info("ingestion run finished",
		zap.Int("total", stats.Total),
		zap.Int("processed", stats.Processed),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("errors", stats.Errors),
	)
	return stats, nil
}

// runSource processes every keyword against one source. Failures on a
// (source, keyword) pair are logged, counted and skipped; they never abort
// the remaining keywords or other sources.
func (p *Pipeline) runSource(ctx context.Context, src types.SourceConfig, keywords []string, maxPerSource int) types.IngestStats {
	stats := types.IngestStats{BySource: make(map[string]int)}
	collected := 0

	for ki, keyword := range keywords {
		if ctx.Err() != nil {
			return stats
		}
		if collected >= maxPerSource {
			break
		}
		if ki > 0 && p.opts.KeywordDelay > 0 {
			p.sleepFn(p.opts.KeywordDelay)
		}

		listings, fetchErrs := p.fetchKeyword(ctx, src, keyword, maxPerSource-collected)
		stats.Errors += fetchErrs
		if len(listings) == 0 {
			continue
		}
		collected += len(listings)

		batch := p.upserter.UpsertBatch(ctx, listings, p.nowFn())
		stats.Merge(batch)
	}

	p.logger.Info("source ingested",
		zap.String("source", src.Name),
		zap.Int("processed", stats.Processed),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("errors", stats.Errors),
	)
	return stats
}

// fetchKeyword pages through one (source, keyword) search until the budget
// is filled, a page comes back empty, or the page cap is reached. A failed
// page is counted and skipped, not retried within the run.
func (p *Pipeline) fetchKeyword(ctx context.Context, src types.SourceConfig, keyword string, budget int) ([]types.RawListing, int) {
	var collected []types.RawListing
	fetchErrs := 0

	for page := 1; page <= maxPagesPerKeyword && len(collected) < budget; page++ {
		html, err := p.fetcher.FetchPage(ctx, src, keyword, page)
		if err != nil {
			fetchErrs++
			p.logger.Warn("fetch failed, skipping",
				zap.String("source", src.Name),
				zap.String("keyword", keyword),
				zap.Int("page", page),
				zap.Error(err),
			)
			break
		}

		listings, dropped, err := scrape.Extract(html, src)
		if err != nil {
			fetchErrs++
			p.logger.Warn("extraction failed, skipping",
				zap.String("source", src.Name),
				zap.String("keyword", keyword),
				zap.Int("page", page),
				zap.Error(err),
			)
			break
		}
		if dropped > 0 {
			p.logger.Debug("malformed listings dropped",
				zap.String("source", src.Name),
				zap.String("keyword", keyword),
				zap.Int("dropped", dropped),
			)
		}
		if len(listings) == 0 {
			break
		}

		collected = append(collected, listings...)
	}

	if len(collected) > budget {
		collected = collected[:budget]
	}
	return collected, fetchErrs
}
