// Package main provides the entry point for the TalentBoard discovery API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentboard",
	Short: "TalentBoard job discovery API server",
	Long:  "TalentBoard turns a free-text search string and a candidate profile into a ranked, filtered list of job postings via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
