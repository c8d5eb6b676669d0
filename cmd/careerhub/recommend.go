package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank recommendations for a user profile",
	Long:  "Load a user profile from a JSON file, score active jobs against it, and print the top matches excluding jobs the user already saved or applied to.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendUser    string
	recommendLimit   int
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to user profile JSON (required)")
	recommendCmd.Flags().StringVarP(&recommendUser, "user", "u", "", "User ID (defaults to the profile's id)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 10, "Number of recommendations")

	recommendCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	provider, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	userID := provider.profile.ID
	if recommendUser != "" {
		userID, err = uuid.Parse(recommendUser)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
	}

	a, err := newApp(ctx, provider)
	if err != nil {
		return err
	}
	defer a.close()

	recs, err := a.svc.GetRecommendations(ctx, userID, recommendLimit)
	if err != nil {
		return fmt.Errorf("recommendations failed: %w", err)
	}

	return printJSON(recs)
}
