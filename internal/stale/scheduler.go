package stale

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the staleness sweeps and purges on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// Default schedules: sweep hourly, purge daily after the morning ingest.
const (
	SweepSchedule = "0 * * * *"
	PurgeSchedule = "30 2 * * *"
)

// NewScheduler registers the manager's sweep and purge jobs. daysOld is the
// retention window passed to each purge.
func NewScheduler(mgr *Manager, daysOld int, logger *zap.Logger) (*Scheduler, error) {
	c := cron.New()

	if _, err := c.AddFunc(SweepSchedule, func() {
		if _, err := mgr.Sweep(context.Background()); err != nil {
			logger.Error("scheduled sweep failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(PurgeSchedule, func() {
		if _, err := mgr.Purge(context.Background(), daysOld); err != nil {
			logger.Error("scheduled purge failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start begins the schedule and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("staleness scheduler started",
		zap.String("sweep", SweepSchedule),
		zap.String("purge", PurgeSchedule),
	)

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("staleness scheduler stopped")
}
