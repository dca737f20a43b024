// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const importCSV = `id,title,year,doi,journal,citations,oa_url,oa_status,publication_date,authors,relevance_score,search_method
W1,Raman Spectroscopy of Microplastics,2020,10.1/x,Journal of Polymer Analysis,42,,gold,2020-06-12,"Jane Doe, John Smith",87.5,default_search
W2,Infrared Imaging of Fibers,2021,,Applied Optics,7,,green,2021-01-01,Ada Lovelace,,default_search
W3,Polymer Degradation Pathways,2019,,Journal of Polymer Analysis,113,,closed,2019-03-03,Grace Hopper,12.25,second_search
,Orphaned Row Without Identifier,2020,,,,,,,,,
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "works.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func importSample(t *testing.T, s *Store) *bytes.Buffer {
	t.Helper()
	path := filepath.Join(t.TempDir(), "works.csv")
	if err := os.WriteFile(path, []byte(importCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	stored, err := s.ImportCSV(context.Background(), path, &buf)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if stored != 3 {
		t.Fatalf("stored = %d, want 3", stored)
	}
	return &buf
}

func TestImportCSV(t *testing.T) {
	s := newTestStore(t)
	buf := importSample(t, s)

	if !strings.Contains(buf.String(), "skipping row without id") {
		t.Errorf("output missing skip warning:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "stored 3 works") {
		t.Errorf("output missing store count:\n%s", buf.String())
	}
}

func TestImportCSVReplacesByID(t *testing.T) {
	s := newTestStore(t)
	importSample(t, s)
	importSample(t, s)

	entries, err := s.Search(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3 after re-import", len(entries))
	}
}

func TestSearchFullText(t *testing.T) {
	s := newTestStore(t)
	importSample(t, s)

	entries, err := s.Search(context.Background(), "raman", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "W1" {
		t.Fatalf("entries = %+v, want only W1", entries)
	}
	e := entries[0]
	if e.Year != 2020 || e.Citations != 42 || e.OAStatus != "gold" {
		t.Errorf("entry = %+v", e)
	}
	if e.Authors != "Jane Doe, John Smith" {
		t.Errorf("Authors = %q", e.Authors)
	}
}

func TestSearchMatchesAuthorsAndJournal(t *testing.T) {
	s := newTestStore(t)
	importSample(t, s)

	byAuthor, err := s.Search(context.Background(), "lovelace", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].ID != "W2" {
		t.Errorf("author search = %+v, want W2", byAuthor)
	}

	byJournal, err := s.Search(context.Background(), "polymer", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(byJournal) != 2 {
		t.Errorf("journal search = %+v, want W1 and W3", byJournal)
	}
}

func TestSearchEmptyQueryListsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	importSample(t, s)

	entries, err := s.Search(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].ID != "W2" || entries[1].ID != "W1" || entries[2].ID != "W3" {
		t.Errorf("order = %s, %s, %s; want W2, W1, W3", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestSearchLimit(t *testing.T) {
	s := newTestStore(t)
	importSample(t, s)

	entries, err := s.Search(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}
}

func TestFormatEntries(t *testing.T) {
	var buf bytes.Buffer
	FormatEntries(nil, &buf)
	if got := buf.String(); got != "No works found.\n" {
		t.Errorf("empty output = %q", got)
	}

	buf.Reset()
	FormatEntries([]Entry{
		{ID: "W1", Title: "Raman Spectroscopy", Year: 2020, OAStatus: "gold", Citations: 42, SearchMethod: "default_search"},
	}, &buf)
	out := buf.String()
	if !strings.Contains(out, "Raman Spectroscopy") || !strings.Contains(out, "2020") {
		t.Errorf("output missing entry fields:\n%s", out)
	}
	if !strings.Contains(out, "1 works") {
		t.Errorf("output missing total:\n%s", out)
	}
}
