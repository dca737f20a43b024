// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes collected works: a fixed-schema CSV file for the
// filter pipeline to consume, and a human-readable console listing.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// columns is the fixed CSV schema. The filter pipeline and the catalog read
// these names back, so order and spelling are load-bearing.
var columns = []string{
	"id",
	"title",
	"year",
	"doi",
	"journal",
	"citations",
	"oa_url",
	"oa_status",
	"publication_date",
	"authors",
	"relevance_score",
	"search_method",
}

// WriteCSV saves works to path under the fixed column schema. A failing row is
// logged and skipped without aborting the remaining writes. Nothing is written
// when the work list is empty.
func WriteCSV(works []types.Work, path string, w io.Writer) error {
	if len(works) == 0 {
		fmt.Fprintln(w, "no works to save")
		return nil
	}

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

	fmt.Fprintf(w, "saving %d works to %s\n", len(works), path)

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	written := 0
	for _, work := range works {
		if err := cw.Write(row(work)); err != nil {
			fmt.Fprintf(w, "warning: could not write row for %s: %v\n", work.ID, err)
			continue
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV records: %w", err)
	}

	fmt.Fprintf(w, "wrote %d rows to %s\n", written, path)
	return nil
}

// row renders one work as a CSV record in column order. Year 0 and a missing
// relevance score render as empty strings; the remaining defaults were already
// substituted at decode time.
func row(work types.Work) []string {
	year := ""
	if work.Year > 0 {
		year = strconv.Itoa(work.Year)
	}
	relevance := ""
	if work.RelevanceScore != nil {
		relevance = strconv.FormatFloat(*work.RelevanceScore, 'f', -1, 64)
	}
	return []string{
		work.ID,
		work.Title,
		year,
		work.DOI,
		work.Journal,
		strconv.Itoa(work.Citations),
		work.OAURL,
		work.OAStatus,
		work.PublicationDate,
		work.AuthorsJoined(),
		relevance,
		work.SearchMethod,
	}
}
