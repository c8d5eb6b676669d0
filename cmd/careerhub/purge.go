package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete long-inactive externally-sourced listings",
	Long:  "Remove inactive listings from external sources whose last sighting is older than the retention window. Employer-posted jobs are never purged.",
	RunE:  runPurge,
}

var purgeDays int

func init() {
	purgeCmd.Flags().IntVarP(&purgeDays, "days", "d", 0, "Retention window in days (default from PURGE_AFTER_DAYS)")

	rootCmd.AddCommand(purgeCmd)
}

func runPurge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	days := purgeDays
	if days == 0 {
		days = a.cfg.PurgeAfterDays
	}

	count, err := a.svc.PurgeStale(ctx, days)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Purged %d stale listing(s) older than %d days\n", count, days)
	return nil
}
