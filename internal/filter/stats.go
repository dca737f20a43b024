// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"io"
	"strings"
)

const barWidth = 50

// DisplayStats writes the per-stage totals, a per-year bar chart, and summary
// statistics (year range, average per year, peak year) to w.
func DisplayStats(w io.Writer, y YearCounts, totalRows, dupsRemoved, oaFiltered int) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\nPAPERS COUNT BY YEAR\n%s\n\n", rule, rule)

	fmt.Fprintf(w, "Total papers (original): %d\n", totalRows)
	if dupsRemoved > 0 {
		fmt.Fprintf(w, "Duplicates removed: %d\n", dupsRemoved)
		fmt.Fprintf(w, "Unique papers: %d\n", totalRows-dupsRemoved)
	}
	if oaFiltered > 0 {
		fmt.Fprintf(w, "Filtered by OA status: %d\n", oaFiltered)
		fmt.Fprintf(w, "Papers after filtering: %d\n", totalRows-dupsRemoved-oaFiltered)
	}
	fmt.Fprintf(w, "Papers with year: %d\n", y.Total())
	fmt.Fprintf(w, "Papers without year: %d\n", y.Missing)

	years := y.Years()
	if len(years) == 0 {
		fmt.Fprintln(w, "\nNo papers with valid years found")
		return
	}

	_, maxCount := y.Peak()

	dash := strings.Repeat("-", 70)
	fmt.Fprintf(w, "\n%s\n%-10s %-10s %s\n%s\n", dash, "Year", "Count", "Bar Chart", dash)
	for _, year := range years {
		count := y.Counts[year]
		bar := strings.Repeat("█", count*barWidth/maxCount)
		fmt.Fprintf(w, "%-10d %-10d %s\n", year, count, bar)
	}
	fmt.Fprintln(w, dash)

	peakYear, peakCount := y.Peak()
	fmt.Fprintf(w, "\nYear range: %d - %d\n", years[0], years[len(years)-1])
	fmt.Fprintf(w, "Average papers per year: %.1f\n", float64(y.Total())/float64(len(years)))
	fmt.Fprintf(w, "Peak year: %d with %d papers\n", peakYear, peakCount)
}
