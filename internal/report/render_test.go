// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SpectraGen/openalex-scrapping/pkg/types"
)

func boolPtr(b bool) *bool { return &b }

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Render(nil, &buf)
	if got := buf.String(); got != "No results returned.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRenderFullEntry(t *testing.T) {
	works := []types.Work{{
		ID:             "W1",
		Title:          "Raman Spectroscopy of Microplastics",
		Year:           2020,
		DOI:            "https://doi.org/10.1000/x",
		Journal:        "Journal of Polymer Analysis",
		Venue:          "Journal of Polymer Analysis",
		Citations:      42,
		OAURL:          "https://example.org/pdf",
		OAStatus:       "gold",
		Authors:        []string{"Jane Doe"},
		LandingPageURL: "https://example.org/landing",
		Concepts:       []string{"Raman spectroscopy", "Microplastics"},
		RelevanceScore: floatPtr(87.5),
	}}

	var buf bytes.Buffer
	Render(works, &buf)
	out := buf.String()

	for _, want := range []string{
		"Found 1 matching works (showing 1):",
		"Result 1:",
		"  Title: Raman Spectroscopy of Microplastics",
		"  Year: 2020",
		"  Journal: Journal of Polymer Analysis (OA status: gold)",
		"  Authors: Jane Doe",
		"  OA URL: https://example.org/pdf",
		"  Citations: 42",
		"  DOI: https://doi.org/10.1000/x",
		"  URL: https://example.org/landing",
		"  Concepts: Raman spectroscopy, Microplastics",
		"  Relevance score: 87.500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSparseEntry(t *testing.T) {
	works := []types.Work{{ID: "W2", Title: "Untitled", OAStatus: "unknown"}}

	var buf bytes.Buffer
	Render(works, &buf)
	out := buf.String()

	if !strings.Contains(out, "  Year: Unknown year") {
		t.Errorf("output missing unknown year:\n%s", out)
	}
	if !strings.Contains(out, "  Journal: Unknown venue (Access status unknown)") {
		t.Errorf("output missing venue fallback:\n%s", out)
	}
	if !strings.Contains(out, "  Authors: Unknown authors") {
		t.Errorf("output missing author fallback:\n%s", out)
	}
	for _, absent := range []string{"DOI:", "URL:", "Concepts:", "Relevance score:"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should omit %q for a sparse entry:\n%s", absent, out)
		}
	}
}

func TestRenderConceptsCapped(t *testing.T) {
	works := []types.Work{{
		ID:       "W3",
		Title:    "T",
		Concepts: []string{"a", "b", "c", "d", "e", "f", "g"},
	}}

	var buf bytes.Buffer
	Render(works, &buf)
	out := buf.String()

	if !strings.Contains(out, "  Concepts: a, b, c, d, e\n") {
		t.Errorf("concepts not capped at %d:\n%s", maxRenderedConcepts, out)
	}
	if strings.Contains(out, ", f") {
		t.Errorf("sixth concept leaked:\n%s", out)
	}
}

func TestOASummary(t *testing.T) {
	tests := []struct {
		name string
		work types.Work
		want string
	}{
		{"explicit status", types.Work{OAStatus: "green"}, "OA status: green"},
		{"unknown status falls back to open flag", types.Work{OAStatus: "unknown", IsOA: boolPtr(true)}, "Open Access"},
		{"closed flag", types.Work{IsOA: boolPtr(false)}, "Closed Access"},
		{"nothing known", types.Work{}, "Access status unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oaSummary(tt.work); got != tt.want {
				t.Errorf("oaSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRepositoryFulltextHint(t *testing.T) {
	works := []types.Work{{ID: "W4", Title: "T", RepositoryFulltext: true}}

	var buf bytes.Buffer
	Render(works, &buf)
	if !strings.Contains(buf.String(), "repository fulltext available") {
		t.Errorf("output missing repository hint:\n%s", buf.String())
	}
}
