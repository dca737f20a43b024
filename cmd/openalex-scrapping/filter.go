// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpectraGen/openalex-scrapping/internal/filter"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Deduplicate, OA-filter, and count a works CSV by year",
	Long: `Filter post-processes a works CSV produced by fetch. Without flags it
writes a year-count table (Year, Paper Count). With --deduplicate it drops
rows repeating an earlier title (case-insensitive) and writes the surviving
rows with all original columns; --oa additionally keeps only rows with the
given open-access status and requires --deduplicate.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringP("input", "i", "", "path to the input CSV of papers")
	filterCmd.MarkFlagRequired("input")
	filterCmd.Flags().StringP("output", "o", "", "path to the output CSV (year counts without -d, filtered papers with -d)")
	filterCmd.MarkFlagRequired("output")
	filterCmd.Flags().BoolP("deduplicate", "d", false, "deduplicate papers by title and save the filtered papers")
	filterCmd.Flags().String("oa", "", "filter by open access status: green, gold, hybrid, or bronze (requires -d)")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	dedup, _ := cmd.Flags().GetBool("deduplicate")
	oa, _ := cmd.Flags().GetString("oa")

	if oa != "" {
		switch oa {
		case "green", "gold", "hybrid", "bronze":
		default:
			return fmt.Errorf("invalid --oa value %q (choose green, gold, hybrid, or bronze)", oa)
		}
		if !dedup {
			return fmt.Errorf("--oa requires the --deduplicate flag")
		}
	}

	return filter.Run(filter.Options{
		Input:       input,
		Output:      output,
		Deduplicate: dedup,
		OAStatus:    oa,
	}, cmd.OutOrStdout())
}
