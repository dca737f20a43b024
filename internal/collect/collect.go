// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect runs configured searches against the works API: it paginates
// each search, applies the client-side relevance threshold, and merges the
// results of all searches into one deduplicated list.
package collect

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/SpectraGen/openalex-scrapping/internal/openalex"
	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// Inter-request delays, courtesy to the remote service rather than a
// correctness mechanism. Package vars so tests can zero them.
var (
	// PageDelay separates consecutive page requests within one search.
	PageDelay = 300 * time.Millisecond

	// SearchDelay separates distinct searches.
	SearchDelay = time.Second
)

// TotalUnknown marks a search whose total result count could not be fetched.
const TotalUnknown = -1

// FetchResult holds one search's outcome: the best-effort total count and the
// works collected across all fetched pages, in fetch order.
type FetchResult struct {
	Total int
	Works []types.Work
}

// Fetch paginates one search up to its configured page limit. A count failure
// is logged and leaves Total at TotalUnknown; an empty page stops pagination;
// a page-fetch error aborts the remaining pages for this search but keeps the
// works already collected.
func Fetch(ctx context.Context, c *openalex.Client, cfg types.SearchConfig, w io.Writer) FetchResult {
	fmt.Fprintf(w, "%s...\n", cfg.Name)
	fmt.Fprintf(w, "  query: %s\n", cfg.Query)

	q := openalex.BuildQuery(cfg)

	result := FetchResult{Total: TotalUnknown}
	total, err := c.Count(ctx, q)
	if err != nil {
		fmt.Fprintf(w, "  warning: could not get total count: %v\n", err)
	} else {
		result.Total = total
		fmt.Fprintf(w, "  total available: %d\n", total)
	}

	for page := 1; page <= cfg.MaxPages; page++ {
		works, err := c.FetchPage(ctx, q, page, cfg.PerPage)
		if err != nil {
			fmt.Fprintf(w, "  error during pagination: %v\n", err)
			break
		}
		if len(works) == 0 {
			fmt.Fprintf(w, "  no more results at page %d\n", page)
			break
		}

		if cfg.Filters.MinRelevance != nil {
			works = filterByRelevance(works, *cfg.Filters.MinRelevance)
		}

		result.Works = append(result.Works, works...)
		fmt.Fprintf(w, "  page %d: %d works (total: %d)\n", page, len(works), len(result.Works))

		time.Sleep(PageDelay)
	}

	return result
}

// filterByRelevance drops works scoring below min. A missing score counts
// as 0, so pure filter queries drop everything under a positive threshold.
func filterByRelevance(works []types.Work, min float64) []types.Work {
	kept := works[:0]
	for _, work := range works {
		score := 0.0
		if work.RelevanceScore != nil {
			score = *work.RelevanceScore
		}
		if score >= min {
			kept = append(kept, work)
		}
	}
	return kept
}

// All runs every configured search in declaration order, tags each work with
// the name of the search that produced it, and keeps only the first work seen
// per identifier. Duplicates from later searches are dropped silently beyond
// the per-search "added" count. Works without an identifier are dropped.
func All(ctx context.Context, c *openalex.Client, configs []types.SearchConfig, w io.Writer) []types.Work {
	var all []types.Work
	seen := make(map[string]bool)

	for _, cfg := range configs {
		result := Fetch(ctx, c, cfg, w)

		added := 0
		for _, work := range result.Works {
			work.SearchMethod = cfg.Name
			if work.ID == "" || seen[work.ID] {
				continue
			}
			seen[work.ID] = true
			all = append(all, work)
			added++
		}
		fmt.Fprintf(w, "  added %d new works from %s\n", added, cfg.Name)
		fmt.Fprintf(w, "  total unique works so far: %d\n\n", len(all))

		time.Sleep(SearchDelay)
	}

	return all
}
