package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recheck one listing's liveness at its originating board",
	Long:  "Probe a listing's source URL and deactivate the record when the origin no longer serves it. Employer-posted jobs are reported as-is.",
	RunE:  runRefresh,
}

var refreshJob string

func init() {
	refreshCmd.Flags().StringVarP(&refreshJob, "job", "j", "", "Job ID (required)")

	refreshCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobID, err := uuid.Parse(refreshJob)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	alive, err := a.svc.RefreshListingStatus(ctx, jobID)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if alive {
		fmt.Fprintf(os.Stdout, "Listing %s is live\n", jobID)
	} else {
		fmt.Fprintf(os.Stdout, "Listing %s is gone; record deactivated\n", jobID)
	}
	return nil
}
