// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DeduplicateByTitle keeps the first occurrence of each title, compared after
// trimming and lowercasing. Rows with an empty title are always kept since
// they cannot be matched. Returns the surviving rows and the drop count.
func DeduplicateByTitle(rows []map[string]string) ([]map[string]string, int) {
	seen := make(map[string]bool)
	var kept []map[string]string
	removed := 0

	for _, row := range rows {
		title := strings.ToLower(strings.TrimSpace(row["title"]))
		if title == "" {
			kept = append(kept, row)
			continue
		}
		if seen[title] {
			removed++
			continue
		}
		seen[title] = true
		kept = append(kept, row)
	}
	return kept, removed
}

// FilterByOAStatus keeps rows whose oa_status equals status, compared
// case-insensitively after trimming. Returns the surviving rows and the
// drop count.
func FilterByOAStatus(rows []map[string]string, status string) ([]map[string]string, int) {
	want := strings.ToLower(status)
	var kept []map[string]string
	removed := 0

	for _, row := range rows {
		if strings.ToLower(strings.TrimSpace(row["oa_status"])) == want {
			kept = append(kept, row)
		} else {
			removed++
		}
	}
	return kept, removed
}

// YearCounts maps publication years to paper counts. Rows whose year field is
// blank or not purely decimal digits land in Missing instead.
type YearCounts struct {
	Counts  map[int]int
	Missing int
}

// CountByYear buckets rows by their year field.
func CountByYear(rows []map[string]string) YearCounts {
	y := YearCounts{Counts: make(map[int]int)}
	for _, row := range rows {
		year := strings.TrimSpace(row["year"])
		if !isYear(year) {
			y.Missing++
			continue
		}
		n, err := strconv.Atoi(year)
		if err != nil {
			y.Missing++
			continue
		}
		y.Counts[n]++
	}
	return y
}

// isYear reports whether s is non-empty and all decimal digits. Negative and
// otherwise non-numeric years never count.
func isYear(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Years returns the bucketed years in ascending order.
func (y YearCounts) Years() []int {
	years := make([]int, 0, len(y.Counts))
	for year := range y.Counts {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Total returns the number of rows counted into year buckets.
func (y YearCounts) Total() int {
	total := 0
	for _, count := range y.Counts {
		total += count
	}
	return total
}

// Peak returns the year with the highest count and that count. Ties go to the
// earliest year in ascending order. Returns zeros for an empty map.
func (y YearCounts) Peak() (year, count int) {
	for _, yr := range y.Years() {
		if y.Counts[yr] > count {
			year, count = yr, y.Counts[yr]
		}
	}
	return year, count
}

// WriteYearCounts saves the year counts to path as a two-column CSV
// (Year, Paper Count), sorted ascending by year.
func WriteYearCounts(y YearCounts, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Year", "Paper Count"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, year := range y.Years() {
		record := []string{strconv.Itoa(year), strconv.Itoa(y.Counts[year])}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV records: %w", err)
	}
	return nil
}
