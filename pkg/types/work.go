// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Work represents one OpenAlex work after decoding at the API boundary.
// Defaults for missing fields ("Untitled", "Unknown", "unknown", 0) are
// substituted at decode time so downstream stages never see absent values.
// A Work is mutated exactly once after creation, to set SearchMethod, and is
// immutable thereafter.
type Work struct {
	// ID is the OpenAlex work URL (e.g. "https://openalex.org/W2741809807"),
	// stable across fetches and used for deduplication.
	ID string

	// Title is the work's display name ("Untitled" when absent).
	Title string

	// Year is the publication year, 0 when unknown.
	Year int

	DOI string

	// Journal is the primary location's source name ("Unknown" when absent).
	Journal string

	Citations int

	OAURL string

	// OAStatus is the open-access category: green, gold, hybrid, bronze,
	// closed, or "unknown" when the API omitted it.
	OAStatus string

	// PublicationDate is the raw YYYY-MM-DD date string from the API.
	PublicationDate string

	// Authors lists author display names in source order.
	Authors []string

	// RelevanceScore is the full-text ranking score, nil for pure filter
	// queries where the API returns none.
	RelevanceScore *float64

	// SearchMethod is the name of the search that produced this work,
	// assigned at aggregation time.
	SearchMethod string

	// Fields below feed the console renderer only; they are not part of the
	// CSV schema.

	// Venue is the host venue's display name, empty when unknown.
	Venue string

	// LandingPageURL is the primary location's landing page.
	LandingPageURL string

	// Concepts lists concept display names in API order.
	Concepts []string

	// IsOA reports whether the work is open access, nil when unreported.
	IsOA *bool

	// RepositoryFulltext reports whether any repository hosts the full text,
	// used as a hint when no direct OA URL exists.
	RepositoryFulltext bool
}

// AuthorsJoined returns the comma-separated author list, or "Unknown authors"
// when the work has none.
func (w Work) AuthorsJoined() string {
	if len(w.Authors) == 0 {
		return "Unknown authors"
	}
	return strings.Join(w.Authors, ", ")
}
