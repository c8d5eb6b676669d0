// Package main provides the entry point for the CareerHub aggregation backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerhub",
	Short: "CareerHub job aggregation backend",
	Long:  "CareerHub ingests listings from South African job boards, normalizes and deduplicates them, and serves ranked search and recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
