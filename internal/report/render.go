// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// maxRenderedConcepts caps the concept list in the console listing.
const maxRenderedConcepts = 5

// Render writes a numbered human-readable listing of works to w. Optional
// fields (DOI, landing page, concepts, relevance score) are omitted from an
// entry rather than printed empty.
func Render(works []types.Work, w io.Writer) {
	if len(works) == 0 {
		fmt.Fprintln(w, "No results returned.")
		return
	}

	fmt.Fprintf(w, "Found %d matching works (showing %d):\n\n", len(works), len(works))

	for i, work := range works {
		fmt.Fprintf(w, "Result %d:\n", i+1)
		fmt.Fprintf(w, "  Title: %s\n", work.Title)
		if work.Year > 0 {
			fmt.Fprintf(w, "  Year: %d\n", work.Year)
		} else {
			fmt.Fprintln(w, "  Year: Unknown year")
		}

		venue := work.Venue
		if venue == "" {
			venue = "Unknown venue"
		}
		fmt.Fprintf(w, "  Journal: %s (%s)\n", venue, oaSummary(work))
		fmt.Fprintf(w, "  Authors: %s\n", work.AuthorsJoined())

		if work.OAURL != "" {
			fmt.Fprintf(w, "  OA URL: %s\n", work.OAURL)
		} else if work.RepositoryFulltext {
			fmt.Fprintln(w, "  OA URL: repository fulltext available (check OpenAlex record)")
		}

		fmt.Fprintf(w, "  Citations: %d\n", work.Citations)
		if work.DOI != "" {
			fmt.Fprintf(w, "  DOI: %s\n", work.DOI)
		}
		if work.LandingPageURL != "" {
			fmt.Fprintf(w, "  URL: %s\n", work.LandingPageURL)
		}

		concepts := work.Concepts
		if len(concepts) > maxRenderedConcepts {
			concepts = concepts[:maxRenderedConcepts]
		}
		if len(concepts) > 0 {
			fmt.Fprintf(w, "  Concepts: %s\n", strings.Join(concepts, ", "))
		}

		if work.RelevanceScore != nil {
			fmt.Fprintf(w, "  Relevance score: %.3f\n", *work.RelevanceScore)
		}
		fmt.Fprintln(w)
	}
}

// oaSummary phrases the access status for the listing. A literal "unknown"
// status is the decode-time default, so it falls through to the is_oa flag.
func oaSummary(work types.Work) string {
	if work.OAStatus != "" && work.OAStatus != "unknown" {
		return "OA status: " + work.OAStatus
	}
	if work.IsOA != nil {
		if *work.IsOA {
			return "Open Access"
		}
		return "Closed Access"
	}
	return "Access status unknown"
}
