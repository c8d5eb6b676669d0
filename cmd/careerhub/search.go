package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzansijobs/careerhub/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the canonical job store",
	Long:  "Run a filtered, sorted, paginated query against the canonical job store and print the result page with facets as JSON.",
	RunE:  runSearch,
}

var (
	searchQuery      string
	searchProvince   string
	searchCity       string
	searchJobTypes   []string
	searchLevels     []string
	searchSalaryMin  int
	searchSalaryMax  int
	searchSkills     []string
	searchIndustry   string
	searchRemoteOnly bool
	searchMaxAgeDays int
	searchPage       int
	searchLimit      int
	searchSort       string
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query across title, description, requirements and company")
	searchCmd.Flags().StringVar(&searchProvince, "province", "", "Province filter (exact)")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "City filter (exact)")
	searchCmd.Flags().StringSliceVar(&searchJobTypes, "job-type", nil, "Job type filter (any of)")
	searchCmd.Flags().StringSliceVar(&searchLevels, "level", nil, "Experience level filter (any of)")
	searchCmd.Flags().IntVar(&searchSalaryMin, "salary-min", -1, "Minimum salary")
	searchCmd.Flags().IntVar(&searchSalaryMax, "salary-max", -1, "Maximum salary")
	searchCmd.Flags().StringSliceVar(&searchSkills, "skill", nil, "Required skill filter (any of)")
	searchCmd.Flags().StringVar(&searchIndustry, "industry", "", "Industry filter")
	searchCmd.Flags().BoolVar(&searchRemoteOnly, "remote", false, "Remote jobs only")
	searchCmd.Flags().IntVar(&searchMaxAgeDays, "max-age-days", 0, "Only jobs published within the last N days")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number (1-indexed)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Page size (1-100)")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "Sort key: relevance, date, salary_asc, salary_desc, company, title")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.close()

	filter := types.SearchFilter{
		Query:          searchQuery,
		Province:       searchProvince,
		City:           searchCity,
		RequiredSkills: searchSkills,
		Industry:       searchIndustry,
		RemoteOnly:     searchRemoteOnly,
		MaxAgeDays:     searchMaxAgeDays,
		Page:           searchPage,
		Limit:          searchLimit,
		SortBy:         types.SortKey(searchSort),
	}
	for _, t := range searchJobTypes {
		filter.JobTypes = append(filter.JobTypes, types.JobType(t))
	}
	for _, l := range searchLevels {
		filter.ExperienceLevels = append(filter.ExperienceLevels, types.ExperienceLevel(l))
	}
	if searchSalaryMin >= 0 {
		filter.SalaryMin = &searchSalaryMin
	}
	if searchSalaryMax >= 0 {
		filter.SalaryMax = &searchSalaryMax
	}

	result, err := a.svc.SearchJobs(ctx, filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printJSON(result)
}
