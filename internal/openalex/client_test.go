// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleWorksJSON = `{
  "meta": {"count": 1234, "per_page": 2, "page": 1},
  "results": [
    {
      "id": "https://openalex.org/W2741809807",
      "display_name": "Raman Spectroscopy of Microplastics",
      "doi": "https://doi.org/10.1000/plastics.1",
      "publication_date": "2020-06-12",
      "publication_year": 2020,
      "cited_by_count": 42,
      "relevance_score": 87.5,
      "authorships": [
        {"author": {"id": "A1", "display_name": "Jane Doe"}},
        {"author": {"id": "A2", "display_name": "John Smith"}}
      ],
      "primary_location": {
        "source": {"id": "S1", "display_name": "Journal of Polymer Analysis"},
        "landing_page_url": "https://example.org/landing"
      },
      "host_venue": {"display_name": "Journal of Polymer Analysis"},
      "open_access": {"is_oa": true, "oa_status": "gold", "oa_url": "https://example.org/pdf", "any_repository_has_fulltext": false},
      "concepts": [
        {"display_name": "Raman spectroscopy"},
        {"display_name": "Microplastics"}
      ]
    },
    {
      "id": "https://openalex.org/W999",
      "display_name": "",
      "doi": "",
      "publication_date": "",
      "publication_year": 0,
      "authorships": [],
      "primary_location": null,
      "host_venue": null,
      "open_access": null,
      "concepts": []
    }
  ]
}`

func worksTestServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
	old := worksBase
	worksBase = ts.URL
	t.Cleanup(func() {
		worksBase = old
		ts.Close()
	})
	return ts
}

func TestFetchPageDecodesWorks(t *testing.T) {
	worksTestServer(t, http.StatusOK, sampleWorksJSON)

	c := &Client{HTTP: http.DefaultClient, UserAgent: "test/0.1"}
	works, err := c.FetchPage(context.Background(), Query{Search: "plastics"}, 1, 2)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("len(works) = %d, want 2", len(works))
	}

	w := works[0]
	if w.ID != "https://openalex.org/W2741809807" {
		t.Errorf("ID = %q", w.ID)
	}
	if w.Title != "Raman Spectroscopy of Microplastics" {
		t.Errorf("Title = %q", w.Title)
	}
	if w.Year != 2020 || w.Citations != 42 {
		t.Errorf("Year = %d, Citations = %d", w.Year, w.Citations)
	}
	if w.Journal != "Journal of Polymer Analysis" {
		t.Errorf("Journal = %q", w.Journal)
	}
	if w.OAStatus != "gold" || w.OAURL != "https://example.org/pdf" {
		t.Errorf("OAStatus = %q, OAURL = %q", w.OAStatus, w.OAURL)
	}
	if w.RelevanceScore == nil || *w.RelevanceScore != 87.5 {
		t.Errorf("RelevanceScore = %v, want 87.5", w.RelevanceScore)
	}
	if len(w.Authors) != 2 || w.Authors[0] != "Jane Doe" {
		t.Errorf("Authors = %v", w.Authors)
	}
	if w.LandingPageURL != "https://example.org/landing" {
		t.Errorf("LandingPageURL = %q", w.LandingPageURL)
	}
	if w.IsOA == nil || !*w.IsOA {
		t.Errorf("IsOA = %v, want true", w.IsOA)
	}
}

func TestFetchPageAppliesDefaults(t *testing.T) {
	worksTestServer(t, http.StatusOK, sampleWorksJSON)

	c := &Client{HTTP: http.DefaultClient}
	works, err := c.FetchPage(context.Background(), Query{}, 1, 2)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	// The second sample work has everything missing.
	w := works[1]
	if w.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", w.Title)
	}
	if w.Journal != "Unknown" {
		t.Errorf("Journal = %q, want Unknown", w.Journal)
	}
	if w.OAStatus != "unknown" {
		t.Errorf("OAStatus = %q, want unknown", w.OAStatus)
	}
	if w.Citations != 0 || w.Year != 0 {
		t.Errorf("Citations = %d, Year = %d, want zeros", w.Citations, w.Year)
	}
	if w.RelevanceScore != nil {
		t.Errorf("RelevanceScore = %v, want nil", w.RelevanceScore)
	}
	if w.IsOA != nil {
		t.Errorf("IsOA = %v, want nil", w.IsOA)
	}
}

func TestCount(t *testing.T) {
	worksTestServer(t, http.StatusOK, sampleWorksJSON)

	c := &Client{HTTP: http.DefaultClient}
	count, err := c.Count(context.Background(), Query{Search: "plastics"})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1234 {
		t.Errorf("Count() = %d, want 1234", count)
	}
}

func TestClientSendsMailtoAndUserAgent(t *testing.T) {
	var gotMailto, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMailto = r.URL.Query().Get("mailto")
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"meta": {"count": 0}, "results": []}`)
	}))
	defer ts.Close()
	old := worksBase
	worksBase = ts.URL
	defer func() { worksBase = old }()

	c := &Client{HTTP: http.DefaultClient, Mailto: "user@example.com", UserAgent: "openalex-scrapping/test"}
	if _, err := c.FetchPage(context.Background(), Query{}, 1, 10); err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if gotMailto != "user@example.com" {
		t.Errorf("mailto = %q", gotMailto)
	}
	if gotUA != "openalex-scrapping/test" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestFetchPageHTTPError(t *testing.T) {
	worksTestServer(t, http.StatusForbidden, `{"error": "nope"}`)

	c := &Client{HTTP: http.DefaultClient}
	_, err := c.FetchPage(context.Background(), Query{}, 1, 10)
	if err == nil || !strings.Contains(err.Error(), "HTTP 403") {
		t.Errorf("error = %v, want HTTP 403", err)
	}
}

func TestFetchPageBadJSON(t *testing.T) {
	worksTestServer(t, http.StatusOK, `{not json`)

	c := &Client{HTTP: http.DefaultClient}
	_, err := c.FetchPage(context.Background(), Query{}, 1, 10)
	if err == nil || !strings.Contains(err.Error(), "parsing OpenAlex response") {
		t.Errorf("error = %v, want parse failure", err)
	}
}
