// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"io"
	"os"
)

// Options holds one filter-pipeline invocation. The OA filter requires
// deduplication; the CLI enforces that before Run is called.
type Options struct {
	Input  string
	Output string

	// Deduplicate drops later rows with a duplicate normalized title and
	// switches the output from year counts to the filtered row set.
	Deduplicate bool

	// OAStatus, when non-empty, keeps only rows with this open-access status.
	OAStatus string
}

// Run executes the filter pipeline: load, optional dedup, optional OA filter,
// year bucketing, stats display, and the output write. With deduplication the
// output is the filtered rows under the original columns; without it, the
// year-count table. A missing input file is reported without writing output.
func Run(opts Options, w io.Writer) error {
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		fmt.Fprintf(w, "input file not found: %s\n", opts.Input)
		return nil
	}

	table, err := LoadTable(opts.Input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.Input, err)
	}
	rows := table.Rows
	total := len(rows)
	fmt.Fprintf(w, "read %d papers from %s\n", total, opts.Input)

	dupsRemoved := 0
	if opts.Deduplicate {
		fmt.Fprintln(w, "deduplicating papers by title...")
		rows, dupsRemoved = DeduplicateByTitle(rows)
		fmt.Fprintf(w, "  removed %d duplicate papers\n", dupsRemoved)
		fmt.Fprintf(w, "  remaining papers: %d\n", len(rows))
	}

	oaFiltered := 0
	if opts.OAStatus != "" {
		fmt.Fprintf(w, "filtering papers by OA status: %s...\n", opts.OAStatus)
		rows, oaFiltered = FilterByOAStatus(rows, opts.OAStatus)
		fmt.Fprintf(w, "  filtered out %d papers\n", oaFiltered)
		fmt.Fprintf(w, "  remaining papers: %d\n", len(rows))
	}

	counts := CountByYear(rows)
	DisplayStats(w, counts, total, dupsRemoved, oaFiltered)

	if opts.Deduplicate {
		if err := table.Write(opts.Output, rows); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nsaved %d filtered papers to %s\n", len(rows), opts.Output)
	} else if len(counts.Counts) > 0 {
		if err := WriteYearCounts(counts, opts.Output); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nsaved year counts to %s\n", opts.Output)
	}
	return nil
}
