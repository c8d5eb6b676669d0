package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "List jobs related to a reference job",
	RunE:  runSimilar,
}

var (
	similarJob   string
	similarLimit int
)

func init() {
	similarCmd.Flags().StringVarP(&similarJob, "job", "j", "", "Reference job ID (required)")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 10, "Number of similar jobs")

	similarCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobID, err := uuid.Parse(similarJob)
	if err != nil {
		return fmt.Errorf("invalid job id: %w", err)
	}

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	similar, err := a.svc.GetSimilarJobs(ctx, jobID, similarLimit)
	if err != nil {
		return fmt.Errorf("similar jobs failed: %w", err)
	}

	return printJSON(similar)
}
