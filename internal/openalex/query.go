// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex is a minimal client for the OpenAlex works API: it builds
// filter queries from SearchConfigs, fetches result pages, and decodes raw
// works into typed records with explicit defaults.
package openalex

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

// Query holds the assembled request parameters for one search: the full-text
// search term and the filter clauses joined into the API's filter parameter.
type Query struct {
	Search  string
	Filters []string
}

// BuildQuery translates a SearchConfig into a Query. An exact year becomes a
// publication_year filter; otherwise from/to years become date bounds (Jan 1
// and Dec 31). Extra dotted-path filters follow in sorted key order. The
// min_relevance filter is applied client-side and never appears here.
func BuildQuery(cfg types.SearchConfig) Query {
	q := Query{Search: cfg.Query}
	f := cfg.Filters

	if f.Year != nil {
		q.Filters = append(q.Filters, fmt.Sprintf("publication_year:%d", *f.Year))
	} else {
		if f.FromYear != nil {
			q.Filters = append(q.Filters, fmt.Sprintf("from_publication_date:%d-01-01", *f.FromYear))
		}
		if f.ToYear != nil {
			q.Filters = append(q.Filters, fmt.Sprintf("to_publication_date:%d-12-31", *f.ToYear))
		}
	}

	keys := make([]string, 0, len(f.Extra))
	for k := range f.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Filters = append(q.Filters, k+":"+f.Extra[k])
	}

	return q
}

// params renders the query as URL parameters for one page request.
func (q Query) params(page, perPage int) url.Values {
	params := url.Values{
		"per-page": {fmt.Sprintf("%d", perPage)},
		"page":     {fmt.Sprintf("%d", page)},
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if len(q.Filters) > 0 {
		params.Set("filter", strings.Join(q.Filters, ","))
	}
	return params
}
