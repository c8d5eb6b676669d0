package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the ingestion pipeline across all configured sources",
	Long:  "Fetch search results from every configured job board for the given keywords, extract and normalize the listings, and upsert new records into the store.",
	RunE:  runIngest,
}

var (
	ingestKeywords     []string
	ingestMaxPerSource int
)

func init() {
	ingestCmd.Flags().StringSliceVarP(&ingestKeywords, "keywords", "k", nil, "Search keywords (default from INGEST_KEYWORDS)")
	ingestCmd.Flags().IntVarP(&ingestMaxPerSource, "max-per-source", "m", 0, "Max listings per source (default from MAX_PER_SOURCE)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	keywords := ingestKeywords
	if len(keywords) == 0 {
		keywords = a.cfg.IngestKeywords
	}
	maxPerSource := ingestMaxPerSource
	if maxPerSource == 0 {
		maxPerSource = a.cfg.MaxPerSource
	}

	stats, err := a.svc.RunIngestionPipeline(ctx, keywords, maxPerSource)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Ingestion complete\n")
	fmt.Fprintf(os.Stdout, "  Total listings:  %d\n", stats.Total)
	fmt.Fprintf(os.Stdout, "  New records:     %d\n", stats.Processed)
	fmt.Fprintf(os.Stdout, "  Duplicates:      %d\n", stats.Duplicates)
	fmt.Fprintf(os.Stdout, "  Errors:          %d\n", stats.Errors)
	for src, n := range stats.BySource {
		fmt.Fprintf(os.Stdout, "  %-16s %d\n", src+":", n)
	}
	return nil
}
