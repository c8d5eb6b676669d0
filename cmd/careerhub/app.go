package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/mzansijobs/careerhub/internal/activity"
	"github.com/mzansijobs/careerhub/internal/cache"
	"github.com/mzansijobs/careerhub/internal/config"
	"github.com/mzansijobs/careerhub/internal/ingest"
	"github.com/mzansijobs/careerhub/internal/jobs"
	"github.com/mzansijobs/careerhub/internal/logger"
	"github.com/mzansijobs/careerhub/internal/scrape"
	"github.com/mzansijobs/careerhub/internal/source"
	"github.com/mzansijobs/careerhub/internal/stale"
	"github.com/mzansijobs/careerhub/internal/store"
	"github.com/mzansijobs/careerhub/internal/types"
)

// app bundles the wired backend for one command invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *store.Postgres
	stats  *cache.Cache
	staler *stale.Manager
	svc    *jobs.Service
}

// newApp loads configuration and wires the full service. users may be nil
// for commands that never rank.
func newApp(ctx context.Context, users store.UserProvider) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// The stats cache is optional; an unreachable Redis degrades to
	// recomputation rather than blocking the command.
	stats, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if err != nil {
		log.Warn("stats cache unavailable, continuing without", zap.Error(err))
		stats = nil
	}

	registry := source.Default()
	if cfg.SourcesFile != "" {
		registry, err = source.LoadFile(cfg.SourcesFile)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("load sources file: %w", err)
		}
	}

	fetcher := scrape.NewFetcher(cfg.FetchTimeout, log)
	upserter := ingest.NewUpserter(db, db, log)
	pipeline := ingest.NewPipeline(registry, fetcher, upserter, ingest.Options{
		KeywordDelay: cfg.KeywordDelay,
		SourceDelay:  cfg.SourceDelay,
		Parallel:     cfg.ParallelSources,
	}, log)

	staler := stale.NewManager(db, cfg.FetchTimeout, cfg.SourceDelay, log)

	svcCfg := jobs.Config{
		Jobs:     db,
		Scores:   db,
		Users:    users,
		Pipeline: pipeline,
		Stale:    staler,
		StatsTTL: cfg.StatsCacheTTL,
		Sink:     activity.NewLogSink(log),
		Logger:   log,
	}
	if stats != nil {
		svcCfg.Stats = stats
	}

	svc, err := jobs.New(svcCfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{cfg: cfg, logger: log, db: db, stats: stats, staler: staler, svc: svc}, nil
}

func (a *app) close() {
	if a.stats != nil {
		_ = a.stats.Close()
	}
	a.db.Close()
	_ = a.logger.Sync()
}

// fileProfileProvider serves a single user profile loaded from a JSON file,
// standing in for the external account system.
type fileProfileProvider struct {
	profile types.UserProfile
}

func loadProfile(path string) (*fileProfileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p types.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &fileProfileProvider{profile: p}, nil
}

func (p *fileProfileProvider) GetProfile(_ context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	if p.profile.ID != userID {
		return nil, nil
	}
	out := p.profile
	return &out, nil
}

// printJSON writes v to stdout with indentation.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
