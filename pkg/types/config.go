// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the works collection and
// filtering pipelines. See docs/ARCHITECTURE § Data Structures.
package types

import (
	"fmt"
	"time"
)

// Defaults applied when a search definition omits a value.
const (
	DefaultQuery    = "raman spectroscopy of plastics"
	DefaultPerPage  = 200
	DefaultMaxPages = 10
)

// HTTPConfig holds shared HTTP settings for stages that call the OpenAlex API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "openalex-scrapping/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds app-level settings for the fetch pipeline.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Mailto is the contact email sent with every request. OpenAlex routes
	// identified requests to its polite pool with better rate limits.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// Output is the default CSV destination used when --output is not given.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// QueryFilters holds the recognized filters of one search plus arbitrary
// pass-through equality constraints.
type QueryFilters struct {
	// Year filters on an exact publication year. Mutually exclusive with
	// FromYear/ToYear.
	Year *int

	// FromYear and ToYear bound the publication date range (inclusive).
	FromYear *int
	ToYear   *int

	// MinRelevance drops fetched works whose relevance score falls below it.
	// Applied client-side after each page, not sent to the API.
	MinRelevance *float64

	// Extra holds dotted-path equality filters (e.g. "institutions.id")
	// passed to the API verbatim, values already rendered as filter strings.
	Extra map[string]string
}

// Validate checks the filter combination invariants.
func (f QueryFilters) Validate() error {
	if f.Year != nil && (f.FromYear != nil || f.ToYear != nil) {
		return fmt.Errorf("'year' cannot be combined with 'from_year' or 'to_year'")
	}
	if f.FromYear != nil && f.ToYear != nil && *f.FromYear > *f.ToYear {
		return fmt.Errorf("'from_year' must be less than or equal to 'to_year'")
	}
	return nil
}

// SearchConfig describes one named search against the OpenAlex works API.
type SearchConfig struct {
	// Query is the full-text search term. Empty means a pure filter query.
	Query string

	// PerPage is the page size requested from the API (max 200).
	PerPage int

	// MaxPages caps how many pages are fetched for this search.
	MaxPages int

	// Name tags every work this search produces (search_method column).
	Name string

	Filters QueryFilters
}
