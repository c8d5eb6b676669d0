package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mzansijobs/careerhub/internal/stale"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the staleness sweep and purge on their cron schedules",
	Long:  "Start the long-running scheduler: hourly liveness sweeps and a daily purge of long-inactive external listings. Stops cleanly on SIGINT/SIGTERM.",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	sched, err := stale.NewScheduler(a.staler, a.cfg.PurgeAfterDays, a.logger)
	if err != nil {
		return err
	}

	sched.Start(ctx)
	return nil
}
