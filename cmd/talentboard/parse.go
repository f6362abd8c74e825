package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaneda/talentboard/internal/query"
)

var parseCmd = &cobra.Command{
	Use:   "parse [query...]",
	Short: "Parse a search string and print the extracted filters",
	Long:  "Runs the query parser on the given search string and prints the structured filter set as JSON. Useful for debugging dictionary coverage.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	parsed := query.Parse(strings.Join(args, " "))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsedView(parsed)); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// parsedView flattens the ParsedQuery for readable JSON output.
func parsedView(p query.ParsedQuery) map[string]any {
	view := map[string]any{"cleaned_query": p.CleanedQuery}
	if p.Location != nil {
		view["location"] = *p.Location
	}
	if p.LocationType != nil {
		view["location_type"] = *p.LocationType
	}
	if p.EmploymentType != nil {
		view["employment_type"] = *p.EmploymentType
	}
	if p.ExperienceLevel != nil {
		view["experience_level"] = *p.ExperienceLevel
	}
	if p.SalaryMin != nil {
		view["salary_min"] = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		view["salary_max"] = *p.SalaryMax
	}
	return view
}
